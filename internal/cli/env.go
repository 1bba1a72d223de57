package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// bindEnvVars sets every flag of cmd that was not given on the command line
// from its environment variable, see [envName]. The variable is appended to
// the flag usage so that it shows up in --help.
//
// Precedence is: arguments, then environment, then flag defaults.
func bindEnvVars(cmd *cobra.Command) {
	bind := func(flag *pflag.Flag) {
		name := envName(flag.Name)

		if !strings.Contains(flag.Usage, name) {
			flag.Usage = fmt.Sprintf("%s ($%s)", flag.Usage, name)
		}

		if flag.Changed {
			return
		}

		value, ok := os.LookupEnv(name)
		if !ok {
			return
		}

		err := flag.Value.Set(value)
		if err != nil {
			// Keep the default.
			slog.Error("set flag from environment",
				slog.String("flag", flag.Name),
				slog.String("env", name),
				slog.String("value", value),
				slog.Any("err", err),
			)
		}
	}

	cmd.Flags().VisitAll(bind)
	cmd.PersistentFlags().VisitAll(bind)
}

// envName returns the environment variable of a flag, e.g. "log-level"
// becomes "PAGEDOTS_LOG_LEVEL".
func envName(flagName string) string {
	return strings.ToUpper(cmdName + "_" + strings.ReplaceAll(flagName, "-", "_"))
}
