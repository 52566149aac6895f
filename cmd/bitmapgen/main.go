package main

import (
	"context"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"bitmapgen/pkg/convert"
	"bitmapgen/pkg/render"
	"bitmapgen/pkg/source"
)

const defaultImage = "CIMG1877.JPG"

var format = flag.StringP("format", "f", "table", "output format: table, channels or structs")
var output = flag.StringP("output", "o", "", "output file (single image only)")
var dir = flag.StringP("dir", "d", ".", "directory for default-named outputs")
var width = flag.Int("width", source.DefaultWidth, "target width")
var height = flag.Int("height", source.DefaultHeight, "target height")
var perLine = flag.Int("per-line", 16, "values per line in channel arrays")
var structsPerLine = flag.Int("structs-per-line", 4, "structs per line in struct arrays")
var names = flag.String("names", "bitmapR,bitmapG,bitmapB", "red,green,blue channel array names")
var structType = flag.String("struct-type", "colorInstance", "struct element type")
var structName = flag.String("struct-name", "bitmap", "struct array name")
var structHeader = flag.String("struct-header", "screen.h", "header declaring the struct type")
var jobs = flag.IntP("jobs", "j", 0, "images converted at once (0 = all CPUs)")
var progress = flag.Bool("progress", false, "show progress bars")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	sources := flag.Args()
	if len(sources) == 0 {
		sources = []string{defaultImage}
	}
	if *output != "" && len(sources) > 1 {
		log.Fatal("--output needs exactly one image")
	}

	var conv *convert.Converter
	var logger *zap.Logger

	app := fx.New(
		fxLogger(),
		fx.Provide(
			func() (*zap.Logger, error) {
				return newLogger(*debug)
			},
			func() afero.Fs {
				return afero.NewOsFs()
			},
			func(fs afero.Fs, logger *zap.Logger) *source.Loader {
				return source.New(fs, logger,
					source.WithSize(*width, *height),
					source.WithProgress(*progress),
				)
			},
			newRenderer,
			newConverter,
		),
		fx.Populate(&conv, &logger),
	)
	if err := app.Err(); err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, conv, sources); err != nil {
		stop()
		logger.With(zap.Error(err)).Fatal("conversion failed")
	}
}

func run(ctx context.Context, conv *convert.Converter, sources []string) error {
	if *output != "" {
		_, err := conv.Convert(ctx, convert.Job{Source: sources[0], Output: *output})
		return err
	}

	_, err := conv.ConvertAll(ctx, sources)
	return err
}

func fxLogger() fx.Option {
	if !*debug {
		return fx.NopLogger
	}
	return fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: logger}
	})
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func newRenderer() (*render.Renderer, error) {
	parts := strings.Split(*names, ",")
	if len(parts) != 3 {
		return nil, errors.Errorf("--names wants 3 comma-separated names, got %q", *names)
	}

	return render.New(
		render.WithValuesPerLine(*perLine),
		render.WithStructsPerLine(*structsPerLine),
		render.WithArrayNames(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])),
		render.WithStruct(*structType, *structName, *structHeader),
	), nil
}

func newConverter(fs afero.Fs, loader *source.Loader, r *render.Renderer, logger *zap.Logger) (*convert.Converter, error) {
	f, err := render.ParseFormat(*format)
	if err != nil {
		return nil, err
	}

	if info, err := fs.Stat(*dir); err != nil {
		return nil, errors.Wrap(err, "output dir")
	} else if !info.IsDir() {
		return nil, errors.Errorf("output dir %s is not a directory", *dir)
	}

	return convert.New(fs, loader, r, logger,
		convert.WithFormat(f),
		convert.WithDir(*dir),
		convert.WithJobs(*jobs),
		convert.WithProgress(*progress),
	), nil
}
