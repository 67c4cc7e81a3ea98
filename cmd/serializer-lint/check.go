package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	serializer "github.com/0xalexb/hjarta-serializer"
	"github.com/0xalexb/hjarta-serializer/logging"
	"github.com/0xalexb/hjarta-serializer/serializerfx"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errCheckFailed = errors.New("check failed")

type checkSettings struct {
	Config    string
	Path      string
	Strict    bool
	Fields    []string
	LogLevel  string
	LogFormat string
}

func newCheckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [serializer...]",
		Short: "Resolve serializers and print their field keys",
		Long: `Load the declarations file, resolve the named serializers (all of them when
none are given) and print the keys each one would emit.`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(v, cmd.LocalFlags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := checkSettings{
				Config:    v.GetString("config"),
				Path:      v.GetString("path"),
				Strict:    v.GetBool("strict"),
				Fields:    v.GetStringSlice("fields"),
				LogLevel:  v.GetString("log-level"),
				LogFormat: v.GetString("log-format"),
			}

			return runCheck(cmd.OutOrStdout(), cmd.ErrOrStderr(), settings, args)
		},
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "serializers.yaml", "declarations file")
	flags.String("path", "", "colon-separated path to the declarations inside the file")
	flags.Bool("strict", false, "reject unknown keys")
	flags.StringSlice("fields", nil, "fields override passed to every serializer")

	return cmd
}

func runCheck(out, errOut io.Writer, settings checkSettings, names []string) error {
	logger := logging.NewLogger(logging.LoggerConfig{
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
	}, errOut)
	slog.SetDefault(logger)

	opts := []serializerfx.Option{serializerfx.WithPath(settings.Path)}
	if settings.Strict {
		opts = append(opts, serializerfx.WithStrict())
	}

	var registry *serializer.Registry

	app := fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		serializerfx.Module(settings.Config, opts...),
		fx.Populate(&registry),
	)

	err := app.Err()
	if err != nil {
		return fmt.Errorf("loading %s: %w", settings.Config, err)
	}

	if len(names) == 0 {
		names = registry.Names()
	}

	var params serializer.Params
	if len(settings.Fields) > 0 {
		params = serializer.Params{serializer.ParamFields: settings.Fields}
	}

	failed := 0

	for _, name := range names {
		s, err := registry.New(name, params)
		if err != nil {
			failed++

			fmt.Fprintf(out, "FAIL %s: %v\n", name, err)

			continue
		}

		fmt.Fprintf(out, "ok   %s: %s\n", name, strings.Join(s.FieldKeys(), ", "))
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d serializers", errCheckFailed, failed, len(names))
	}

	return nil
}
