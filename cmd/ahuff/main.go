// Command ahuff encodes, decodes, and traces adaptive Huffman streams.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/ahuff/cmd/ahuff/decode"
	"github.com/chronos-tachyon/ahuff/cmd/ahuff/encode"
	"github.com/chronos-tachyon/ahuff/cmd/ahuff/trace"
	"github.com/chronos-tachyon/ahuff/cmd/ahuff/version"
	"github.com/chronos-tachyon/ahuff/internal/xlog"
)

func newRootCmd() *cobra.Command {
	env := xlog.ConfigFromEnv()

	rootCmd := &cobra.Command{
		Use:           "ahuff",
		Short:         "Adaptive Huffman coding utility",
		Long:          "ahuff encodes and decodes byte streams with a one-pass adaptive Huffman code.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var cfg xlog.Config
			cfg.Level, _ = cmd.Flags().GetString("log-level")
			cfg.Format, _ = cmd.Flags().GetString("log-format")
			cfg.Color, _ = cmd.Flags().GetString("color")

			logger, err := xlog.New(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", env.Level, "Log level: trace|debug|info|warn|error (env "+xlog.EnvLogLevel+")")
	flags.String("log-format", env.Format, "Log format: console|json (env "+xlog.EnvLogFormat+")")
	flags.String("color", env.Color, "Colour output: auto|always|never (env "+xlog.EnvLogColor+")")

	rootCmd.AddCommand(encode.NewCmd())
	rootCmd.AddCommand(decode.NewCmd())
	rootCmd.AddCommand(trace.NewCmd())
	rootCmd.AddCommand(version.NewCmd())
	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
