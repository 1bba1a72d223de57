package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/aymanbagabas/go-udiff"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/pagedots/pkg/config"
	"github.com/macropower/pagedots/pkg/log"
	"github.com/macropower/pagedots/pkg/ui"
	"github.com/macropower/pagedots/pkg/ui/theme"
)

const (
	cmdExamples = `  # Scroll through the default number of pages:
  pagedots

  # Use 40 pages:
  pagedots --pages 40

  # Reload the configuration file whenever it changes:
  pagedots --watch

  # Write the default configuration file, replacing an existing one:
  pagedots --write-config --force

  # Replay a scroll script without the TUI:
  pagedots replay ./testdata/drag.yaml --format table`
)

// ErrNotTerminal is returned when the TUI is started without a terminal.
var ErrNotTerminal = errors.New("stdout is not a terminal")

type RunArgs struct {
	*RootArgs

	ConfigPath  string
	Pages       int
	Watch       bool
	WriteConfig bool
	Force       bool
	ShowConfig  bool
}

func NewRunArgs(rootArgs *RootArgs) *RunArgs {
	return &RunArgs{
		RootArgs: rootArgs,
	}
}

func (ra *RunArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ra.ConfigPath, "config", "", "Path to the pagedots configuration file")
	cmd.Flags().IntVar(&ra.Pages, "pages", 0, "Number of pages, overrides the configuration file")
	cmd.Flags().BoolVarP(&ra.Watch, "watch", "w", false, "Watch the configuration file and reload on changes")
	cmd.Flags().BoolVar(&ra.WriteConfig, "write-config", false, "Write the default configuration file and exit")
	cmd.Flags().BoolVar(&ra.Force, "force", false, "Replace an existing file with --write-config")
	cmd.Flags().BoolVar(&ra.ShowConfig, "show-config", false, "Print the active configuration and exit")

	err := cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}
}

func NewRunCmd(ra *RunArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Default command, starts the TUI",
		Example: cmdExamples,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, ra)
		},
	}
	ra.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func run(cmd *cobra.Command, ra *RunArgs) error {
	if ra.Pages < 0 {
		return fmt.Errorf("invalid argument: --pages must not be negative, got %d", ra.Pages)
	}

	configPath := ra.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	if ra.WriteConfig {
		return writeConfig(cmd, configPath, ra.Force)
	}

	_, err := config.WriteDefault(configPath, false)
	if err != nil {
		slog.Error("write default config", slog.Any("err", err))
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if ra.Pages > 0 {
		cfg.UI.Pages = ra.Pages
	}

	if ra.ShowConfig {
		slog.Info("active configuration", slog.String("path", configPath))

		return showConfig(cmd.OutOrStdout(), cfg)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("%w: use %s replay for headless output", ErrNotTerminal, cmdName)
	}

	// The TUI owns the terminal, so logs are kept until it exits.
	logBuf := log.NewBuffer(log.DefaultBufferSize)
	logHandler, err := log.CreateHandlerWithStrings(logBuf, ra.LogLevel, ra.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	slog.SetDefault(slog.New(logHandler))

	err = runUI(cmd.Context(), cfg, configPath, ra.Watch)
	flushLogs(cmd.ErrOrStderr(), logBuf)

	if err != nil {
		return fmt.Errorf("ui program failure: %w", err)
	}

	return nil
}

// loadConfig loads the configuration file. A file that cannot be read is
// replaced by the defaults; an invalid file is an error.
func loadConfig(path string) (*config.Config, error) {
	colored := term.IsTerminal(int(os.Stderr.Fd()))

	cl, err := config.NewLoaderFromFile(path, config.WithColor(colored))
	if err != nil {
		slog.Warn("could not read config, using defaults", slog.Any("err", err))

		return config.New(), nil
	}

	cfg, err := cl.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return cfg, nil
}

func writeConfig(cmd *cobra.Command, path string, force bool) error {
	if force && fileExists(path) {
		current, err := config.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		diff := udiff.Unified(path, "default", string(current), string(config.DefaultYAML()))
		if diff == "" {
			mustN(fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", path))

			return nil
		}

		mustN(fmt.Fprint(cmd.ErrOrStderr(), diff))
	}

	if force && fileExists(path) && term.IsTerminal(int(os.Stdin.Fd())) {
		confirmed := false

		err := huh.NewConfirm().
			Title(fmt.Sprintf("Replace %s?", path)).
			Description("The existing file is kept as a backup.").
			Affirmative("Replace").
			Negative("Cancel").
			Value(&confirmed).
			WithTheme(theme.HuhTheme(theme.Default)).
			Run()
		if err != nil {
			return fmt.Errorf("confirm: %w", err)
		}

		if !confirmed {
			mustN(fmt.Fprintln(cmd.ErrOrStderr(), "Canceled."))

			return nil
		}
	}

	written, err := config.WriteDefault(path, force)
	if err != nil {
		return err //nolint:wrapcheck // Already wrapped.
	}

	if written {
		mustN(fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path))
	} else {
		mustN(fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, use --force to replace it\n", path))
	}

	return nil
}

func showConfig(w io.Writer, cfg *config.Config) error {
	b, err := cfg.MarshalYAML()
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}

	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		_, err = w.Write(b)
		if err != nil {
			return fmt.Errorf("write config: %w", err)
		}

		return nil
	}

	err = quick.Highlight(w, string(b), "yaml", "terminal16m", theme.StyleName(cfg.UI.Theme))
	if err != nil {
		return fmt.Errorf("highlight config: %w", err)
	}

	return nil
}

// runUI starts the TUI and, if watch is set, feeds it configuration reloads.
func runUI(ctx context.Context, cfg *config.Config, configPath string, watch bool) error {
	p := ui.NewProgram(*cfg.Indicator, cfg.UI)

	if watch {
		w, err := config.NewWatcher(configPath)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}

		defer func() {
			err := w.Close()
			if err != nil {
				slog.Error("close config watcher", slog.Any("err", err))
			}
		}()

		if ctx == nil {
			ctx = context.Background()
		}

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		ch := make(chan config.Event)
		w.Subscribe(ch)

		go w.Run(ctx)
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case evt := <-ch:
					p.Send(configMsg(evt))
				}
			}
		}()
	}

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tea: %w", err)
	}

	return nil
}

func configMsg(evt config.Event) ui.ConfigMsg {
	if evt.Err != nil || evt.Config == nil {
		return ui.ConfigMsg{Err: evt.Err}
	}

	return ui.ConfigMsg{
		Indicator: evt.Config.Indicator,
		UI:        evt.Config.UI,
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

func flushLogs(w io.Writer, buf *log.Buffer) {
	slog.Debug("flush logs to console",
		slog.Int("count", buf.Len()),
		slog.Int("dropped", buf.Dropped()),
	)

	_, err := buf.WriteTo(w)
	if err != nil {
		panic(err)
	}
}
