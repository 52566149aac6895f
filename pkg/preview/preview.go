// Package preview turns a pixel table back into a viewable PNG, showing the
// colors the display will get after RGB565 quantization.
package preview

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"bitmapgen/pkg/bitmap"
)

func New(fs afero.Fs, logger *zap.Logger, width, height, scale int) *Previewer {
	if scale < 1 {
		scale = 1
	}
	return &Previewer{
		fs:     fs,
		log:    logger,
		width:  width,
		height: height,
		scale:  scale,
	}
}

type Previewer struct {
	fs     afero.Fs
	log    *zap.Logger
	width  int
	height int
	scale  int
}

// Render reads the table at src and writes an upscaled PNG to dst.
func (p *Previewer) Render(src, dst string) error {
	f, err := p.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	tbl, err := bitmap.ParseTable(f, p.width, p.height)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}

	img := imaging.Resize(tbl.Grid, p.width*p.scale, p.height*p.scale, imaging.NearestNeighbor)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return err
	}

	if err := afero.WriteFile(p.fs, dst, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}

	p.log.With(zap.String("image", tbl.Name), zap.String("src", src), zap.String("dst", dst)).Info("preview saved")
	return nil
}
