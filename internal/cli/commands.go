package cli

import (
	"fmt"
	"time"

	"github.com/nickromney/jwtinspect/internal/logger"
	"github.com/nickromney/jwtinspect/internal/token"
	"github.com/spf13/cobra"
)

type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// Options is what the interactive UI starts from.
type Options struct {
	Token *token.Token
	// Key preloads the Signature pane when HasKey is set. An empty Key with
	// HasKey is a deliberate empty HMAC secret.
	Key    string
	HasKey bool
}

// nowFn is overridable in tests.
var nowFn = time.Now

// NewRootCmd creates the cobra root command with all subcommands.
// The runTUI function is called when a token is given without a subcommand.
func NewRootCmd(runTUI func(Options) error, buildInfo BuildInfo) *cobra.Command {
	var (
		tokenFile string
		keys      keyFlags
		noColor   bool
		ascii     bool
		quiet     bool
	)

	root := &cobra.Command{
		Use:   "jwtinspect [TOKEN]",
		Short: "Inspect a JWT and check decoding keys against it as you type",
		Long: "jwtinspect shows a JWT's header and claims and lets you type or paste a decoding key " +
			"(HMAC secret, PEM or JWK public key); the signature is re-checked on every edit. " +
			"It never signs tokens and never talks to remote services.",
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setOutputOptions(cmd.OutOrStdout(), cmd.ErrOrStderr(), defaultOutputOptions(noColor, ascii, quiet))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && tokenFile == "" {
				_ = cmd.Help()
				return &ExitError{Code: 2, Silent: true}
			}
			// A bad token is reported as such even without a terminal.
			opts, err := loadOptions(cmd, args, tokenFile, &keys)
			if err != nil {
				return err
			}
			if !canRunTUI() {
				return &ExitError{Code: 2, Msg: "stdout is not a terminal; use `jwtinspect inspect` to print the token instead"}
			}
			if runTUI == nil {
				return cmd.Help()
			}
			return runTUI(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&tokenFile, "token-file", "", "Read the token from a file ('-' for stdin)")
	keys.register(root)
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVar(&ascii, "ascii", false, "Use ASCII status symbols")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print errors")

	root.AddCommand(
		newInspectCmd(),
		newVerifyCmd(),
		newVersionCmd(buildInfo),
	)

	return root
}

func loadOptions(cmd *cobra.Command, args []string, tokenFile string, keys *keyFlags) (Options, error) {
	if tokenUsesStdin(args, tokenFile) && keys.given(cmd) && keys.usesStdin() {
		return Options{}, &ExitError{Code: 2, Msg: "stdin can carry the token or the key, not both"}
	}

	tok, err := decodeToken(cmd, args, tokenFile)
	if err != nil {
		return Options{}, err
	}

	opts := Options{Token: tok}
	if keys.given(cmd) {
		key, err := keys.load(cmd)
		if err != nil {
			return Options{}, err
		}
		opts.Key = key
		opts.HasKey = true
	}
	return opts, nil
}

func decodeToken(cmd *cobra.Command, args []string, tokenFile string) (*token.Token, error) {
	raw, err := readToken(cmd, args, tokenFile)
	if err != nil {
		return nil, err
	}
	tok, err := token.Decompose(raw)
	if err != nil {
		return nil, err
	}
	logger.Debug("token decoded", "alg", tok.Alg.String(), "bytes", len(tok.Raw))
	return tok, nil
}

func newVersionCmd(buildInfo BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "jwtinspect %s\n", buildInfo.Version)
			fmt.Fprintf(out, "build_time: %s\n", buildInfo.BuildTime)
			fmt.Fprintf(out, "git_commit: %s\n", buildInfo.GitCommit)
		},
	}
}

func newInspectCmd() *cobra.Command {
	var tokenFile string
	cmd := &cobra.Command{
		Use:   "inspect [TOKEN]",
		Short: "Print the decoded header and claims",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := decodeToken(cmd, args, tokenFile)
			if err != nil {
				return err
			}

			fmt.Fprintln(outStdout)
			kv("Algorithm", fmt.Sprintf("%s (%s)", tok.Alg, tok.Alg.Family()))
			if typ := tok.HeaderField("typ"); typ != "" {
				kv("Type", typ)
			}
			if kid := tok.HeaderField("kid"); kid != "" {
				kv("Key ID", kid)
			}
			kv("Key hint", tok.Alg.KeyHint())

			block("Header", tok.HeaderJSON)
			block("Claims", tok.ClaimsJSON)

			if tok.ClaimsErr != nil {
				fmt.Fprintln(outStdout)
				warn(tok.ClaimsErr.Error())
				return nil
			}

			printTimes(tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&tokenFile, "token-file", "", "Read the token from a file ('-' for stdin)")
	return cmd
}

func printTimes(tok *token.Token) {
	now := nowFn()
	printed := false
	for _, c := range []struct{ claim, label string }{
		{"iat", "Issued At"},
		{"nbf", "Not Before"},
		{"exp", "Expires"},
	} {
		ts, ok := tok.ClaimTime(c.claim)
		if !ok {
			continue
		}
		if !printed {
			fmt.Fprintln(outStdout)
			printed = true
		}
		v := ts.Format(time.RFC3339)
		switch {
		case c.claim == "exp" && !ts.After(now):
			v += " (expired)"
		case c.claim == "nbf" && ts.After(now):
			v += " (not yet valid)"
		}
		kv(c.label, v)
	}
}

func newVerifyCmd() *cobra.Command {
	var (
		tokenFile string
		keys      keyFlags
	)
	cmd := &cobra.Command{
		Use:   "verify [TOKEN]",
		Short: "Check a decoding key against the token's signature",
		Long: "verify resolves the key the same way the interactive view does (PEM, then JWK, " +
			"then raw secret) and exits 0 when the signature checks out, 1 when it does not. " +
			"Claims such as exp are not enforced.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !keys.given(cmd) {
				return &ExitError{Code: 2, Msg: "verify needs a key: --key, --key-stdin or --key-file"}
			}
			opts, err := loadOptions(cmd, args, tokenFile, &keys)
			if err != nil {
				return err
			}

			tok := opts.Token
			key := token.ResolveKey(tok.Alg, []byte(opts.Key))
			valid := token.Validate(tok, key)
			logger.Debug("verify", "alg", tok.Alg.String(), "key_kind", key.Kind.String(), "valid", valid)

			if valid {
				success(fmt.Sprintf("Signature valid (%s, %s)", tok.Alg, key.Kind))
				return nil
			}
			errMsg(fmt.Sprintf("Signature invalid (%s, key read as %s)", tok.Alg, key.Kind))
			return &ExitError{Code: 1, Silent: true}
		},
	}
	cmd.Flags().StringVar(&tokenFile, "token-file", "", "Read the token from a file ('-' for stdin)")
	keys.register(cmd)
	return cmd
}
