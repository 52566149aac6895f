package source

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	DefaultWidth  = 96
	DefaultHeight = 64
)

var ErrEmptySource = errors.New("empty image source")

func New(fs afero.Fs, logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		fs:     fs,
		cli:    resty.New().SetDoNotParseResponse(true),
		log:    logger,
		width:  DefaultWidth,
		height: DefaultHeight,
		filter: imaging.Lanczos,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Loader reads an image from a filesystem or an HTTP(S) URL, decodes it
// and resizes it to a fixed size.
type Loader struct {
	fs       afero.Fs
	cli      *resty.Client
	log      *zap.Logger
	width    int
	height   int
	filter   imaging.ResampleFilter
	progress bool
}

func (l *Loader) Size() (int, int) {
	return l.width, l.height
}

// Load returns the image at path resized to exactly the loader's size.
// The aspect ratio of the source is not preserved.
func (l *Loader) Load(ctx context.Context, path string) (image.Image, error) {
	bs, err := l.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	b := img.Bounds()
	l.log.With(
		zap.String("src", path),
		zap.Int("w", b.Dx()),
		zap.Int("h", b.Dy()),
	).Debug("decoded")

	return imaging.Resize(img, l.width, l.height, l.filter), nil
}

// Read returns the raw bytes behind path.
func (l *Loader) Read(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptySource
	}

	if isURL(path) {
		return l.fetch(ctx, path)
	}

	return afero.ReadFile(l.fs, path)
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
