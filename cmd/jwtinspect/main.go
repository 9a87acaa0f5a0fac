package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nickromney/jwtinspect/internal/cli"
	"github.com/nickromney/jwtinspect/internal/config"
	"github.com/nickromney/jwtinspect/internal/logger"
	"github.com/nickromney/jwtinspect/internal/tui"
)

var (
	// Set via -ldflags at build time.
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, cfgErr := config.Load()

	logOut, closeLog, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: log file: %v\n", err)
	}
	defer closeLog()
	logger.Init(cfg.LogLevel, logOut)
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", cfgErr)
		logger.Warn("config", "err", cfgErr)
	}

	runTUI := func(opts cli.Options) error {
		logger.Info("starting", "version", Version, "alg", opts.Token.Alg.String(), "token_bytes", len(opts.Token.Raw), "preloaded_key", opts.HasKey)

		m := tui.New(opts.Token, cfg)
		if opts.HasKey {
			m = m.WithKey(opts.Key)
		}
		progOpts := []tea.ProgramOption{tea.WithAltScreen()}
		if cfg.Mouse {
			progOpts = append(progOpts, tea.WithMouseCellMotion())
		}
		final, err := tea.NewProgram(m, progOpts...).Run()
		if fm, ok := final.(tui.Model); ok {
			logger.Info("exiting", "valid", fm.Valid())
		}
		return err
	}

	buildInfo := cli.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	root := cli.NewRootCmd(runTUI, buildInfo)
	if err := root.Execute(); err != nil {
		if code, silent, ok := cli.ExitCode(err); ok {
			if !silent && err.Error() != "" {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			return code
		}
		logger.Error("fatal", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
