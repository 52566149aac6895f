package main

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"bitmapgen/pkg/preview"
	"bitmapgen/pkg/source"
)

var output = flag.StringP("output", "o", "", "preview file (default: table name with .png)")
var scale = flag.IntP("scale", "s", 4, "upscale factor")
var width = flag.Int("width", source.DefaultWidth, "table width")
var height = flag.Int("height", source.DefaultHeight, "table height")

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: preview [flags] TABLE.txt")
	}
	src := flag.Arg(0)

	dst := *output
	if dst == "" {
		dst = strings.TrimSuffix(src, filepath.Ext(src)) + ".png"
	}

	logger, _ := zap.NewDevelopment()

	p := preview.New(afero.NewOsFs(), logger, *width, *height, *scale)
	if err := p.Render(src, dst); err != nil {
		logger.With(zap.Error(err)).Fatal("preview failed")
	}
}
