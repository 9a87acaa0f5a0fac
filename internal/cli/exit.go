package cli

import "errors"

// ExitError carries an intended process exit code.
//
// Code 2 is for usage problems (missing token, conflicting flags, no
// terminal). Code 1 with Silent is how verify reports a bad signature after
// it has already printed its own message.
type ExitError struct {
	Code   int
	Silent bool   // main prints nothing for this
	Msg    string // already user-facing
}

func (e *ExitError) Error() string {
	return e.Msg
}

func ExitCode(err error) (code int, silent bool, ok bool) {
	var ee *ExitError
	if !errors.As(err, &ee) {
		return 0, false, false
	}
	return ee.Code, ee.Silent, true
}
