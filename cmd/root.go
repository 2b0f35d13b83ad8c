package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "ercx",
		Short:         "ERCx Open API client: inspect tokens, reports, and token lists",
		Long:          "ercx talks to the ERCx smart-contract compliance testing service. It reads your API key from config.ini, fetches token records, reports and property-test evaluations, and manages token lists from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				// The HTTP debug transport is driven by the env switch, so
				// the flag maps onto it.
				_ = os.Setenv("ERCX_DEBUG", "true")
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Dump HTTP requests and responses to stderr")

	// version and config work without wiring; they are registered first so a
	// broken settings file cannot take them down.
	rootCmd.AddCommand(newVersionCmd(), newConfigCmd())

	app := wireApp()
	rootCmd.AddCommand(
		newTokenCmd(app),
		newTestsCmd(app),
		newUserCmd(app),
		newListCmd(app),
	)

	return rootCmd
}
