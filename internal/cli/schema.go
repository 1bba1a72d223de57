package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/pagedots/pkg/config"
	"github.com/macropower/pagedots/pkg/script"
)

var schemas = map[string]func() ([]byte, error){
	"config": config.Schema,
	"script": script.Schema,
}

func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema {config|script}",
		Short:     "Print the JSON schema of the configuration or script file",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []cobra.Completion{"config", "script"},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := schemas[args[0]]()
			if err != nil {
				return fmt.Errorf("generate %s schema: %w", args[0], err)
			}

			mustN(fmt.Fprintln(cmd.OutOrStdout(), string(b)))

			return nil
		},
	}
}
