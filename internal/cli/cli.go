// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jeranaias/planchat/internal/config"
	"github.com/jeranaias/planchat/internal/logging"
	"github.com/jeranaias/planchat/internal/plain"
	"github.com/jeranaias/planchat/internal/session"
	"github.com/jeranaias/planchat/internal/ui/chat"
	"github.com/jeranaias/planchat/internal/ui/styles"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// ROOT COMMAND
// =============================================================================

// rootOptions holds the global flags plus the hooks tests replace.
type rootOptions struct {
	configPath string
	plain      bool
	logLevel   string
	logFile    string
	locale     string

	// isTerminal reports whether stdin and stdout are terminals
	isTerminal func() (stdin, stdout bool)
	// newPrompter opens the line editor for line mode
	newPrompter func() plain.Prompter
}

func defaultRootOptions() *rootOptions {
	return &rootOptions{
		isTerminal: func() (bool, bool) {
			return IsTTY(), IsStdoutTTY()
		},
		newPrompter: func() plain.Prompter {
			return plain.NewLinerPrompter()
		},
	}
}

// NewRootCommand builds the planchat command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultRootOptions())
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "planchat",
		Short: "A single-conversation message composer for the terminal",
		Long: `planchat keeps one conversation: type a message, press Enter to send it,
and the timeline scrolls to the newest message.

The full-screen interface runs when stdin and stdout are terminals.
Otherwise, or with --plain, planchat reads one line per message.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.planchat/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (default ~/.planchat/planchat.log)")
	flags.StringVar(&opts.locale, "locale", "", "BCP 47 locale for message timestamps (e.g. zh-CN, en-US)")
	root.Flags().BoolVar(&opts.plain, "plain", false, "use line mode even on a terminal")

	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(c.CommandPath(), err)
	})

	root.AddCommand(newConfigCommand(opts))
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:"), err)
		return ExitCode(err)
	}
	return ExitSuccess
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// resolveConfigPath returns the --config value or the default location.
func (o *rootOptions) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.ConfigPath()
}

// loadConfig reads the config file, then applies environment overrides and
// command-line flags. A missing file yields the defaults.
func (o *rootOptions) loadConfig(command string) (*config.Config, string, error) {
	path, err := o.resolveConfigPath()
	if err != nil {
		return nil, "", configError(command, "cannot locate config", err)
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, path, configError(command, "", err)
	}
	if err := o.applyFlags(cfg); err != nil {
		return nil, path, configError(command, "invalid settings", err)
	}
	return cfg, path, nil
}

// applyFlags overrides cfg with the command-line flags and revalidates it.
// Configs reloaded from disk go through it too, so flags keep winning.
func (o *rootOptions) applyFlags(cfg *config.Config) error {
	if o.locale != "" {
		cfg.Time.Locale = o.locale
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	cfg.SetDefaults()
	return cfg.Validate()
}

// =============================================================================
// CHAT
// =============================================================================

// runChat starts the session on the surface the terminal supports.
func runChat(cmd *cobra.Command, opts *rootOptions) error {
	cfg, path, err := opts.loadConfig(cmd.CommandPath())
	if err != nil {
		return err
	}

	stdinTTY, stdoutTTY := opts.isTerminal()
	surface := ChooseSurface(opts.plain, stdinTTY, stdoutTTY)

	logPath, err := cfg.LogPath()
	if err != nil {
		return configError(cmd.CommandPath(), "cannot locate log file", err)
	}
	closer, err := logging.Init(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   logPath,
		// The TUI owns the screen, so only line mode may log to stderr.
		Stderr: surface == SurfaceLine && cfg.Log.Level == "debug" && IsStderrTTY(),
	})
	if err != nil {
		return configError(cmd.CommandPath(), "cannot open log", err)
	}
	defer closer.Close()

	logger := log.Logger.With().Str("surface", surface.String()).Logger()
	logger.Info().
		Str("version", Version).
		Str("config", path).
		Str("locale", cfg.Time.Locale).
		Msg("Starting planchat")

	sess, err := newSession(cfg, &logger)
	if err != nil {
		return configError(cmd.CommandPath(), "", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	switch surface {
	case SurfaceTUI:
		err = runTUI(ctx, cfg, path, opts.applyFlags, sess, logger)
		if err == nil {
			printExitSummary(cmd.OutOrStdout(), sess, time.Now())
		}
	default:
		err = runLine(ctx, opts, sess, cmd.OutOrStdout())
	}

	logger.Info().
		Str("session_id", sess.ID()).
		Int("messages", sess.MessageCount()).
		Dur("duration", time.Since(sess.StartTime())).
		Err(err).
		Msg("planchat exited")
	return err
}

// newSession builds a session from the effective configuration.
func newSession(cfg *config.Config, logger *zerolog.Logger) (*session.Session, error) {
	formatter, err := cfg.Formatter()
	if err != nil {
		return nil, err
	}
	return session.New(session.Options{
		Formatter:      formatter,
		BreakModifiers: session.ParseModifiers(cfg.Keys.NewlineModifiers),
		SmoothScroll:   cfg.UI.SmoothScroll,
		Logger:         logger,
	}), nil
}

// runTUI runs the full-screen interface until the user quits.
func runTUI(ctx context.Context, cfg *config.Config, path string, adjust func(*config.Config) error, sess *session.Session, logger zerolog.Logger) error {
	mode, err := styles.ParseMode(cfg.UI.Theme)
	if err != nil {
		mode = styles.ModeAuto
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := chat.New(chat.Options{
		Session: sess,
		Config:  cfg,
		Theme:   styles.NewTheme(mode),
		Reloads: chat.WatchConfig(watchCtx, path, adjust, logger),
		Logger:  &logger,
	})

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// runLine runs the line-mode prompt until EOF or Ctrl+C.
func runLine(ctx context.Context, opts *rootOptions, sess *session.Session, out io.Writer) error {
	repl := plain.NewREPL(sess, opts.newPrompter(), out)
	defer repl.Close()
	return repl.Run(ctx)
}

// previewLen bounds the last message shown in the exit summary.
const previewLen = 40

// printExitSummary reports the message count, how long the session ran and
// the last message sent.
func printExitSummary(w io.Writer, sess *session.Session, now time.Time) {
	elapsed := now.Sub(sess.StartTime()).Round(time.Second)
	noun := "messages"
	if sess.MessageCount() == 1 {
		noun = "message"
	}
	fmt.Fprintln(w, DimStyle.Render(fmt.Sprintf("Session ended: %d %s in %s", sess.MessageCount(), noun, elapsed)))

	last, ok := sess.LastMessage()
	if !ok {
		return
	}
	fmt.Fprintln(w, DimStyle.Render(fmt.Sprintf("Last: [%s] %s", last.Timestamp, strings.Join(strings.Fields(last.Preview(previewLen)), " "))))
}
