// Package serializerfx provides an Fx module that loads serializer declarations
// from a file and supplies the resulting *serializer.Registry to the container.
package serializerfx

import (
	"errors"

	serializer "github.com/0xalexb/hjarta-serializer"
	"github.com/0xalexb/hjarta-serializer/config"
	filefetcher "github.com/0xalexb/hjarta-serializer/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-serializer/config/parser/yaml"
	"github.com/0xalexb/hjarta-serializer/model"

	"go.uber.org/fx"
)

// ErrEmptyFile is returned when the module is created without a declarations file.
var ErrEmptyFile = errors.New("declarations file must not be empty")

// Config holds the module settings.
type Config struct {
	File   string
	Path   string
	Strict bool
}

// Option defines a function type for configuring the module.
type Option func(*Config)

// WithPath loads the declarations from a colon-separated path inside the file.
func WithPath(path string) Option {
	return func(cfg *Config) {
		cfg.Path = path
	}
}

// WithStrict rejects unknown keys in the declarations file.
func WithStrict() Option {
	return func(cfg *Config) {
		cfg.Strict = true
	}
}

type registryParams struct {
	fx.In

	File   *config.File
	Models *model.Registry `optional:"true"`
}

// Module creates the Fx module. The parser, fetcher and parsed file stay private to
// the module; only *serializer.Registry is exported. A *model.Registry in the
// container, if any, is used to resolve model names not declared in the file.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(file string, opts ...Option) fx.Option {
	if file == "" {
		return fx.Error(ErrEmptyFile)
	}

	cfg := Config{File: file, Path: "", Strict: false}

	for _, apply := range opts {
		apply(&cfg)
	}

	var parserOpts []yamlparser.Option
	if cfg.Strict {
		parserOpts = append(parserOpts, yamlparser.WithStrict())
	}

	return fx.Module("serializer",
		fx.Provide(
			fx.Annotate(
				func() *yamlparser.Parser { return yamlparser.NewParser(parserOpts...) },
				fx.As(new(config.Parser)),
			),
			fx.Annotate(
				filefetcher.NewFetcher(cfg.File),
				fx.As(new(config.DataFetcher)),
			),
			func(parser config.Parser, fetcher config.DataFetcher) (*config.File, error) {
				return config.LoadFile(parser, fetcher, cfg.Path)
			},
			fx.Private,
		),
		fx.Provide(func(params registryParams) (*serializer.Registry, error) {
			return serializer.FromFile(params.File, params.Models)
		}),
	)
}
