package convert

import (
	"context"
	"image"
	"path/filepath"

	"github.com/inhies/go-bytesize"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"bitmapgen/pkg/bitmap"
	"bitmapgen/pkg/render"
)

// Loader returns a decoded image already resized to the target grid.
type Loader interface {
	Load(ctx context.Context, path string) (image.Image, error)
}

func New(fs afero.Fs, loader Loader, renderer *render.Renderer, logger *zap.Logger, opts ...Option) *Converter {
	c := &Converter{
		fs:       fs,
		loader:   loader,
		renderer: renderer,
		log:      logger,
		format:   render.Table,
		dir:      ".",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Converter turns images into rendered RGB565 text files.
type Converter struct {
	fs       afero.Fs
	loader   Loader
	renderer *render.Renderer
	log      *zap.Logger
	// options
	format   render.Format
	dir      string
	jobs     int
	progress bool
}

// Job is one image to convert. An empty Output selects the default name
// for the format, placed in the converter's directory.
type Job struct {
	Source string
	Output string
	// Batch marks the job as part of a multi-image run, which gives header
	// outputs per-image names.
	Batch bool
}

type Result struct {
	Source string
	Output string
	Pixels int
	Size   int
}

func (c *Converter) Format() render.Format {
	return c.format
}

// OutputPath is where job's output is written.
func (c *Converter) OutputPath(job Job) string {
	if job.Output != "" {
		return job.Output
	}
	return filepath.Join(c.dir, c.format.DefaultName(job.Source, job.Batch))
}

// Convert loads, quantizes, renders and writes a single image.
func (c *Converter) Convert(ctx context.Context, job Job) (*Result, error) {
	log := c.log.With(zap.String("src", job.Source), zap.Stringer("format", c.format))

	img, err := c.loader.Load(ctx, job.Source)
	if err != nil {
		return nil, &DecodeError{Path: job.Source, Err: err}
	}

	grid := bitmap.Encode(img)
	log.With(zap.Int("pixels", grid.Len())).Debug("quantized")

	data, err := c.renderer.Bytes(c.format, job.Source, grid)
	if err != nil {
		return nil, err
	}

	out := c.OutputPath(job)
	if err := afero.WriteFile(c.fs, out, data, 0644); err != nil {
		return nil, &WriteError{Path: out, Err: err}
	}

	log.With(
		zap.String("dst", out),
		zap.String("size", bytesize.New(float64(len(data))).String()),
	).Info("converted")

	return &Result{
		Source: job.Source,
		Output: out,
		Pixels: grid.Len(),
		Size:   len(data),
	}, nil
}
