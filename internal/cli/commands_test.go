package cli

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/nickromney/jwtinspect/internal/token"
	"github.com/nickromney/jwtinspect/test/testutil"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// runCmd executes the root command with a fake terminal on stdout and a
// piped stdin carrying the given text.
func runCmd(t *testing.T, runTUI func(Options) error, stdin string, args ...string) result {
	t.Helper()
	saveOutput(t)
	t.Setenv("NO_COLOR", "1")

	oldTerm := isTerminalFn
	t.Cleanup(func() { isTerminalFn = oldTerm })
	isTerminalFn = func(f *os.File) bool { return f == os.Stdout }
	setInlineSecretWarnings(false)
	t.Cleanup(func() { setInlineSecretWarnings(true) })

	root := NewRootCmd(runTUI, BuildInfo{Version: "1.2.3", BuildTime: "now", GitCommit: "abc"})
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func wantExit(t *testing.T, err error, code int) {
	t.Helper()
	got, _, ok := ExitCode(err)
	if !ok {
		t.Fatalf("expected ExitError with code %d, got %v", code, err)
	}
	if got != code {
		t.Fatalf("exit code = %d, want %d (%v)", got, code, err)
	}
}

func captureTUI(opts *Options) func(Options) error {
	return func(o Options) error {
		*opts = o
		return nil
	}
}

func TestRoot_PassesTokenAndKeyFile(t *testing.T) {
	signed := testutil.SignRSA(t, "RS256")
	keyPath := testutil.WriteFile(t, "pub.pem", signed.Key+"\n")

	var got Options
	r := runCmd(t, captureTUI(&got), "", signed.Token, "--key-file", keyPath)
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if got.Token == nil || got.Token.Alg != token.RS256 {
		t.Fatalf("expected decoded RS256 token, got %+v", got.Token)
	}
	if !got.HasKey || got.Key != strings.TrimRight(signed.Key, "\n") {
		t.Fatalf("expected key from file, got HasKey=%v key=%q", got.HasKey, got.Key)
	}
}

func TestRoot_TokenFromStdin(t *testing.T) {
	signed := testutil.SignHMAC(t, "HS256", testutil.Secret)

	var got Options
	r := runCmd(t, captureTUI(&got), signed.Token+"\n", "-")
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if got.Token == nil || got.Token.Raw != signed.Token {
		t.Fatalf("expected token from stdin, got %+v", got.Token)
	}
	if got.HasKey {
		t.Fatalf("no key flag given, HasKey should be false")
	}
}

func TestRoot_EmptyKeyIsAKey(t *testing.T) {
	signed := testutil.SignHMAC(t, "HS256", testutil.Secret)

	var got Options
	r := runCmd(t, captureTUI(&got), "", signed.Token, "--key", "")
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if !got.HasKey || got.Key != "" {
		t.Fatalf("expected explicit empty key, got HasKey=%v key=%q", got.HasKey, got.Key)
	}
}

func TestRoot_UsageErrors(t *testing.T) {
	signed := testutil.SignHMAC(t, "HS256", testutil.Secret)
	tokenPath := testutil.WriteFile(t, "token.txt", signed.Token)

	cases := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"no token", "", nil},
		{"token and token-file", "", []string{signed.Token, "--token-file", tokenPath}},
		{"two key sources", "", []string{signed.Token, "--key", "a", "--key-file", tokenPath}},
		{"stdin for both", signed.Token, []string{"-", "--key-stdin"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			r := runCmd(t, func(Options) error { called = true; return nil }, tc.stdin, tc.args...)
			wantExit(t, r.err, 2)
			if called {
				t.Fatalf("TUI should not start on usage errors")
			}
		})
	}
}

func TestRoot_RequiresTerminal(t *testing.T) {
	signed := testutil.SignHMAC(t, "HS256", testutil.Secret)

	saveOutput(t)
	oldTerm := isTerminalFn
	t.Cleanup(func() { isTerminalFn = oldTerm })

	root := NewRootCmd(func(Options) error {
		t.Fatalf("TUI should not start without a terminal")
		return nil
	}, BuildInfo{})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{signed.Token})
	isTerminalFn = func(*os.File) bool { return false }

	err := root.Execute()
	wantExit(t, err, 2)
	if !strings.Contains(err.Error(), "inspect") {
		t.Fatalf("expected hint to use inspect, got %q", err)
	}
}

func TestRoot_BadTokenReportedWithoutTerminal(t *testing.T) {
	saveOutput(t)
	oldTerm := isTerminalFn
	t.Cleanup(func() { isTerminalFn = oldTerm })
	isTerminalFn = func(*os.File) bool { return false }

	cases := []struct {
		raw  string
		want error
	}{
		{"only.two", token.ErrMalformedToken},
		{testutil.RawToken(`{"alg":"EdDSA"}`, `{}`), token.ErrUnsupportedAlgorithm},
	}
	for _, tc := range cases {
		root := NewRootCmd(func(Options) error {
			t.Fatalf("TUI should not start")
			return nil
		}, BuildInfo{})
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{tc.raw})

		err := root.Execute()
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.raw, tc.want, err)
		}
	}
}

func TestRoot_MalformedTokenIsFatal(t *testing.T) {
	r := runCmd(t, func(Options) error {
		t.Fatalf("TUI should not start for a malformed token")
		return nil
	}, "", "only.two")
	if !errors.Is(r.err, token.ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", r.err)
	}
	if _, _, ok := ExitCode(r.err); ok {
		t.Fatalf("decode failures are plain errors (exit 1), got ExitError")
	}
}

func TestRoot_UnsupportedAlgorithm(t *testing.T) {
	raw := testutil.RawToken(`{"alg":"EdDSA"}`, `{}`)
	r := runCmd(t, nil, "", raw)
	if !errors.Is(r.err, token.ErrUnsupportedAlgorithm) {
		t.Fatalf("expected ErrUnsupportedAlgorithm, got %v", r.err)
	}
}

func TestInspect_PrintsSections(t *testing.T) {
	oldNow := nowFn
	t.Cleanup(func() { nowFn = oldNow })
	nowFn = func() time.Time { return time.Unix(1700000000, 0) }

	signed := testutil.SignHMAC(t, "HS256", testutil.Secret)
	r := runCmd(t, nil, "", "inspect", signed.Token)
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}

	for _, want := range []string{
		"Algorithm: HS256 (HMAC)",
		"Type: JWT",
		"Header",
		`"alg": "HS256"`,
		"Claims",
		`"sub": "1234567890"`,
		"Issued At: 2018-01-18T01:30:22Z",
		"Expires: 2018-01-18T01:30:23Z (expired)",
	} {
		if !strings.Contains(r.stdout, want) {
			t.Fatalf("inspect output missing %q:\n%s", want, r.stdout)
		}
	}
}

func TestInspect_BadClaimsWarns(t *testing.T) {
	raw := testutil.RawToken(`{"alg":"HS256"}`, `{"sub":`)
	r := runCmd(t, nil, "", "inspect", raw)
	if r.err != nil {
		t.Fatalf("bad claims should not fail inspect: %v", r.err)
	}
	if !strings.Contains(r.stdout, "error: decode claims") {
		t.Fatalf("expected in-section error text, got:\n%s", r.stdout)
	}
	if !strings.Contains(r.stdout, "WARN") && !strings.Contains(r.stdout, "!") {
		t.Fatalf("expected a warning line, got:\n%s", r.stdout)
	}
}

func TestInspect_TokenFile(t *testing.T) {
	signed := testutil.SignEC(t, "ES256")
	path := testutil.WriteFile(t, "token.jwt", signed.Token+"\n")

	r := runCmd(t, nil, "", "inspect", "--token-file", path)
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if !strings.Contains(r.stdout, "ES256 (ECDSA)") {
		t.Fatalf("expected ES256 in output:\n%s", r.stdout)
	}
}

func TestVerify(t *testing.T) {
	hs := testutil.SignHMAC(t, "HS256", testutil.Secret)
	rs := testutil.SignRSA(t, "RS256")
	es := testutil.SignEC(t, "ES384")

	cases := []struct {
		name  string
		stdin string
		args  []string
		code  int
	}{
		{"hmac valid", "", []string{hs.Token, "--key", testutil.Secret}, 0},
		{"hmac invalid", "", []string{hs.Token, "--key", "nope"}, 1},
		{"hmac key from stdin", testutil.Secret + "\n", []string{hs.Token, "--key-stdin"}, 0},
		{"rsa pem file", "", []string{rs.Token, "--key-file", testutil.WriteFile(t, "rs.pem", rs.Key)}, 0},
		{"rsa jwk", "", []string{rs.Token, "--key", rs.JWK}, 0},
		{"ec pem from stdin", es.Key, []string{es.Token, "--key-file", "-"}, 0},
		{"ec wrong key", "", []string{es.Token, "--key", rs.Key}, 1},
		{"no key", "", []string{hs.Token}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"verify"}, tc.args...)
			r := runCmd(t, nil, tc.stdin, args...)
			if tc.code == 0 {
				if r.err != nil {
					t.Fatalf("expected success, got %v", r.err)
				}
				if !strings.Contains(r.stdout, "Signature valid") {
					t.Fatalf("expected success line, got %q", r.stdout)
				}
				return
			}
			wantExit(t, r.err, tc.code)
			if tc.code == 1 && !strings.Contains(r.stderr, "Signature invalid") {
				t.Fatalf("expected failure line on stderr, got %q", r.stderr)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	r := runCmd(t, nil, "", "version")
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	want := "jwtinspect 1.2.3\nbuild_time: now\ngit_commit: abc\n"
	if r.stdout != want {
		t.Fatalf("version output = %q, want %q", r.stdout, want)
	}
}
