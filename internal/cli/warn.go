package cli

import (
	"fmt"
	"os"
	"sync"
)

// inlineKeyWarning nudges interactive users off --key at most once per
// process. Tests switch it off.
var inlineKeyWarning = struct {
	sync.Mutex
	disabled bool
	shown    map[string]bool
}{shown: map[string]bool{}}

func setInlineSecretWarnings(enabled bool) {
	inlineKeyWarning.Lock()
	inlineKeyWarning.disabled = !enabled
	inlineKeyWarning.Unlock()
}

func warnInlineSecretFlag(flagName string) {
	// Pipes and logs stay clean.
	if !isTerminalFn(os.Stderr) {
		return
	}

	inlineKeyWarning.Lock()
	defer inlineKeyWarning.Unlock()
	if inlineKeyWarning.disabled || inlineKeyWarning.shown[flagName] {
		return
	}
	inlineKeyWarning.shown[flagName] = true

	fmt.Fprintf(outStderr, "Warning: --%s may leak the key via shell history. Prefer --%s-stdin or --%s-file.\n", flagName, flagName, flagName)
}
