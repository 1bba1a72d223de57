package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/pagedots/pkg/script"
	"github.com/macropower/pagedots/pkg/ui/dots"
)

const replayExamples = `  # Print the state after every step:
  pagedots replay ./drag.yaml

  # Draw the dot column of every step, 24 rows high:
  pagedots replay ./drag.yaml --format frames --height 480

  # Print machine readable frames, including dot descriptors:
  pagedots replay ./drag.yaml --format json`

type ReplayArgs struct {
	*RootArgs

	Format         string
	Height         float64
	RowHeight      float64
	FramesPerStrip int
}

func NewReplayArgs(rootArgs *RootArgs) *ReplayArgs {
	return &ReplayArgs{
		RootArgs: rootArgs,
	}
}

func (ra *ReplayArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ra.Format, "format", "o", string(script.FormatTable),
		fmt.Sprintf("Output format, one of: %s", script.AllFormats))
	cmd.Flags().Float64Var(&ra.Height, "height", 0, "Override the indicator height of the script")
	cmd.Flags().Float64Var(&ra.RowHeight, "row-height", dots.DefaultRowHeight,
		"Indicator length units per row, for the frames format")
	cmd.Flags().IntVar(&ra.FramesPerStrip, "frames-per-strip", script.DefaultFramesPerStrip,
		"Number of frames drawn side by side, for the frames format")

	err := cmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions(script.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

func NewReplayCmd(ra *ReplayArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "replay SCRIPT",
		Short:   "Replay a scroll script without the TUI",
		Example: replayExamples,
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}

			return []cobra.Completion{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return replay(cmd, ra, args[0])
		},
	}
	ra.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func replay(cmd *cobra.Command, ra *ReplayArgs, path string) error {
	format, err := script.ParseFormat(ra.Format)
	if err != nil {
		return fmt.Errorf("invalid argument: %w", err)
	}

	if ra.Height < 0 {
		return fmt.Errorf("invalid argument: --height must not be negative, got %g", ra.Height)
	}

	s, err := script.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	if ra.Height > 0 {
		s.Bounds.Height = ra.Height
	}

	slog.Debug("replay script",
		slog.String("path", path),
		slog.Int("steps", len(s.Steps)),
		slog.Float64("height", s.Bounds.Height),
	)

	frames, err := script.NewPlayer().Play(cmd.Context(), s)
	if err != nil {
		return fmt.Errorf("replay %s: %w", path, err)
	}

	w := script.NewWriter(cmd.OutOrStdout(), format,
		script.WithRenderer(dots.New(dots.WithRowHeight(ra.RowHeight), dots.WithWidth(3))),
		script.WithFramesPerStrip(ra.FramesPerStrip),
	)

	err = w.Write(frames)
	if err != nil {
		return fmt.Errorf("write frames: %w", err)
	}

	return nil
}
