package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/csheth/calculadora/internal/calc"
	"github.com/csheth/calculadora/internal/config"
	"github.com/csheth/calculadora/internal/logger"
	"github.com/csheth/calculadora/internal/tui"
	"github.com/csheth/calculadora/internal/version"
)

type options struct {
	configPath     string
	noAltScreen    bool
	noMouse        bool
	logFile        string
	logLevel       string
	repeatOperator string
	tapeSize       int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&options{})
}

// newRootCmdWith binds the command's flags to opts.
func newRootCmdWith(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculadora",
		Short: "Keypad calculator for the terminal.",
		Long: `A four-function calculator with a 4×5 keypad, an expression trace and a
running display. Type digits and operators directly, move over the keypad
with the arrow keys and press space, or click the buttons.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to the YAML settings file (default "+config.DefaultConfigFilename+" when present)")
	flags.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")
	flags.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse clicks on the keypad")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.repeatOperator, "repeat-operator", "", "operator pressed twice: chain or replace")
	flags.IntVar(&opts.tapeSize, "tape-size", 0, "number of finished calculations kept on the tape")

	cmd.AddCommand(newInitCmd())
	version.AttachCobraVersionCommand(cmd)
	return cmd
}

// newInitCmd writes a settings file holding the default values.
func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:          "init [path]",
		Short:        "Write a settings file with the default values.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigFilename
			if len(args) == 1 {
				path = args[0]
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists, pass --force to overwrite it", path)
				}
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing settings file")
	return cmd
}

// resolveConfig loads the settings file and applies explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("no-alt-screen") {
		cfg.AltScreen = !opts.noAltScreen
	}
	if flags.Changed("no-mouse") {
		cfg.Mouse = !opts.noMouse
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("repeat-operator") {
		cfg.RepeatOperator = opts.repeatOperator
	}
	if flags.Changed("tape-size") {
		cfg.TapeSize = opts.tapeSize
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	closeLog, err := logger.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	ctx = logger.ToContext(ctx, logger.Logger())

	logger.InfoKV(ctx, "starting calculadora",
		"version", version.Version,
		"repeat_operator", cfg.RepeatOperator,
		"tape_size", cfg.TapeSize)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	program := tea.NewProgram(
		tui.New(tui.Config{
			Context:  ctx,
			Engine:   calc.New(cfg.EngineOptions()),
			TapeSize: cfg.TapeSize,
		}),
		programOpts...,
	)

	if _, err := program.Run(); err != nil {
		logger.ErrorKV(ctx, "program error", "error", err)
		return fmt.Errorf("program error: %w", err)
	}
	logger.Infof(ctx, "calculadora exited")
	return nil
}
