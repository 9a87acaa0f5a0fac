package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// keyFlags are the three mutually exclusive ways to supply a decoding key.
type keyFlags struct {
	value string
	stdin bool
	file  string
}

func (k *keyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&k.value, "key", "", "Decoding key (HMAC secret, PEM or JWK)")
	cmd.Flags().BoolVar(&k.stdin, "key-stdin", false, "Read the decoding key from stdin")
	cmd.Flags().StringVar(&k.file, "key-file", "", "Read the decoding key from a file ('-' for stdin)")
}

func (k *keyFlags) given(cmd *cobra.Command) bool {
	f := cmd.Flags()
	return f.Changed("key") || f.Changed("key-stdin") || f.Changed("key-file")
}

func (k *keyFlags) usesStdin() bool {
	return k.stdin || strings.TrimSpace(k.file) == "-"
}

// load returns the key text. An empty --key is a legal (empty) HMAC secret,
// so callers use given() to tell "no key" from "empty key".
func (k *keyFlags) load(cmd *cobra.Command) (string, error) {
	specified := 0
	if cmd.Flags().Changed("key") {
		specified++
	}
	if k.stdin {
		specified++
	}
	if strings.TrimSpace(k.file) != "" {
		specified++
	}
	if specified > 1 {
		return "", &ExitError{Code: 2, Msg: "use only one of --key, --key-stdin, or --key-file"}
	}

	switch {
	case k.stdin:
		return readStdin(cmd, "--key-stdin")
	case strings.TrimSpace(k.file) != "":
		return readFile(cmd, "--key-file", k.file)
	case cmd.Flags().Changed("key"):
		warnInlineSecretFlag("key")
	}
	return k.value, nil
}

// readToken resolves the token from the positional argument ('-' for
// stdin) or --token-file. Exactly one source is required.
func readToken(cmd *cobra.Command, args []string, tokenFile string) (string, error) {
	tokenFile = strings.TrimSpace(tokenFile)
	switch {
	case len(args) > 0 && tokenFile != "":
		return "", &ExitError{Code: 2, Msg: "use either TOKEN or --token-file, not both"}
	case tokenFile != "":
		return readFile(cmd, "--token-file", tokenFile)
	case len(args) == 0:
		return "", &ExitError{Code: 2, Msg: "missing TOKEN (pass it as an argument, '-' for stdin, or --token-file)"}
	case args[0] == "-":
		return readStdin(cmd, "TOKEN '-'")
	}
	return args[0], nil
}

func tokenUsesStdin(args []string, tokenFile string) bool {
	return (len(args) > 0 && args[0] == "-") || strings.TrimSpace(tokenFile) == "-"
}

func readStdin(cmd *cobra.Command, what string) (string, error) {
	// Gate on the real stdin to avoid waiting forever on a terminal.
	if isTerminalFn(os.Stdin) {
		return "", &ExitError{Code: 2, Msg: fmt.Sprintf("%s requires stdin to be piped/redirected", what)}
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	// Trailing newlines only: secrets may contain spaces.
	return strings.TrimRight(string(b), "\r\n"), nil
}

func readFile(cmd *cobra.Command, what, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "-" {
		return readStdin(cmd, what+" -")
	}
	if err := requireFile(path); err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func requireFile(path string) error {
	if path == "" {
		return fmt.Errorf("file path required")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory: %s", path)
	}
	return nil
}
