package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/macropower/pagedots/pkg/log"
)

const (
	cmdName = "pagedots"
	cmdDesc = `Paginated dot scroll indicator for vertical lists.`
)

type RootArgs struct {
	tracerProvider *sdktrace.TracerProvider

	LogLevel     string
	LogFormat    string
	OTLPEndpoint string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))
	cmd.PersistentFlags().
		StringVar(&ra.OTLPEndpoint, "otlp-endpoint", "", "Export traces to this OTLP gRPC endpoint (host:port)")

	var err error

	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()
	runArgs := NewRunArgs(args)

	runCmd := NewRunCmd(runArgs)
	cmd := &cobra.Command{
		Use:                cmdName,
		Short:              cmdDesc,
		Example:            cmdExamples,
		PersistentPreRunE:  setup(args),
		PersistentPostRunE: shutdown(args),
		Args:               runCmd.Args,
		RunE:               runCmd.RunE,
	}

	args.AddFlags(cmd)
	runArgs.AddFlags(cmd)
	cmd.AddCommand(
		runCmd,
		NewReplayCmd(NewReplayArgs(args)),
		NewSchemaCmd(),
	)

	bindEnvVars(cmd)

	return cmd
}

func setup(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logHandler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), ra.LogLevel, ra.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		slog.SetDefault(slog.New(logHandler))

		if ra.OTLPEndpoint == "" {
			return nil
		}

		exporter, err := otlptracegrpc.New(cmd.Context(),
			otlptracegrpc.WithEndpoint(ra.OTLPEndpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return fmt.Errorf("create trace exporter: %w", err)
		}

		ra.tracerProvider = sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		otel.SetTracerProvider(ra.tracerProvider)

		slog.Debug("exporting traces", slog.String("endpoint", ra.OTLPEndpoint))

		return nil
	}
}

func shutdown(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if ra.tracerProvider == nil {
			return nil
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		err := ra.tracerProvider.Shutdown(ctx)
		if err != nil {
			return fmt.Errorf("shutdown tracer provider: %w", err)
		}

		return nil
	}
}
