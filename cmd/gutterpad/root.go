package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/gutterpad"
	"github.com/iw2rmb/gutterpad/internal/config"
	"github.com/iw2rmb/gutterpad/internal/logging"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

type options struct {
	configPath string
	readOnly   bool
	overwrite  bool
	wrap       string
	tabWidth   int
	logFile    string
	debug      bool
}

func newRootCommand(build gutterpad.Build) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "gutterpad [file]",
		Short: "Edit a text file in the terminal",
		Long: `gutterpad edits one plain-text file with a line-number gutter, a
current-line highlight and insert/overwrite modes.

A missing file is created on first save. Settings are read from
` + "`$XDG_CONFIG_HOME/gutterpad/config.yaml`" + ` unless --config names another
file; flags override the config.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runEditor(cmd, opts, path)
		},
	}

	bindFlags(root, &opts)

	root.AddCommand(newVersionCommand(build))
	return root
}

func bindFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "path to config file")
	f.BoolVar(&opts.readOnly, "read-only", false, "open the file read-only")
	f.BoolVar(&opts.overwrite, "overwrite", false, "start in overwrite mode")
	f.StringVar(&opts.wrap, "wrap", config.WrapNone, "soft wrap: none, word or grapheme")
	f.IntVar(&opts.tabWidth, "tab-width", 4, "tab stop width in cells")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging (requires --log-file or log.file)")
}

func runEditor(cmd *cobra.Command, opts options, path string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg, err = applyFlags(cmd, cfg, opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()
	logging.SetDefault(logger)

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	doc, text, err := loadDocument(path)
	if err != nil {
		return err
	}
	logger.Info("opened", "path", doc.Path, "exists", doc.Exists, "eol", fmt.Sprintf("%q", doc.LineEnding))

	ctx := logging.WithLogger(cmd.Context(), logger)
	app := newApp(cfg, doc, text, logging.FromContext(ctx))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

// applyFlags overrides config values with the flags the user set.
func applyFlags(cmd *cobra.Command, cfg config.Config, opts options) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("read-only") {
		cfg.Editor.ReadOnly = opts.readOnly
	}
	if flags.Changed("overwrite") {
		cfg.Editor.Overwrite = opts.overwrite
	}
	if flags.Changed("wrap") {
		cfg.Editor.Wrap = strings.ToLower(strings.TrimSpace(opts.wrap))
	}
	if flags.Changed("tab-width") {
		cfg.Editor.TabWidth = opts.tabWidth
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func openLogger(c config.Log) (*log.Logger, func() error, error) {
	if c.File == "" {
		return logging.Default(), func() error { return nil }, nil
	}
	return logging.OpenFile(c.File, c.Level)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
