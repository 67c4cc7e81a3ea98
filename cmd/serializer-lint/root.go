package main

import (
	"fmt"
	"strings"

	serializer "github.com/0xalexb/hjarta-serializer"
	"github.com/0xalexb/hjarta-serializer/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "hjarta"

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:          "serializer-lint",
		Short:        "Validate serializer declarations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initEnv(v)

			return bindFlags(v, cmd.Root().PersistentFlags())
		},
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", logging.FormatText, "log format (text, json)")

	root.AddCommand(newCheckCmd(v), newVersionCmd())

	return root
}

func initEnv(v *viper.Viper) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	err := v.BindPFlags(flags)
	if err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "serializer-lint %s (compiled %s)\n", serializer.Version, serializer.CompiledAt)
		},
	}
}
