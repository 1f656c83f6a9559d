package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sghaida/diperf/config"
)

// newRootCmd builds the command tree around a fresh viper instance so tests
// can execute it repeatedly.
func newRootCmd() *cobra.Command {
	v := config.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "diperf",
		Short:         "Benchmark dependency injection setup, injection and teardown latency",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./diperf.yaml)")
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	root.PersistentFlags().String("log-file", "", "also append JSON logs to this file")
	bindFlag(v, config.KeyDebug, root.PersistentFlags().Lookup("debug"))
	bindFlag(v, config.KeyLogFile, root.PersistentFlags().Lookup("log-file"))

	root.AddCommand(
		newRunCmd(v, &cfgFile),
		newListCmd(),
	)
	return root
}

// bindFlag panics on error: BindPFlag only fails for a nil flag.
func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
