package source

import (
	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
)

type Option func(l *Loader)

func WithSize(width, height int) Option {
	return func(l *Loader) {
		if width > 0 && height > 0 {
			l.width = width
			l.height = height
		}
	}
}

func WithFilter(filter imaging.ResampleFilter) Option {
	return func(l *Loader) {
		l.filter = filter
	}
}

// WithProgress shows a progress bar on stderr while downloading.
func WithProgress(show bool) Option {
	return func(l *Loader) {
		l.progress = show
	}
}

func WithClient(cli *resty.Client) Option {
	return func(l *Loader) {
		l.cli = cli.SetDoNotParseResponse(true)
	}
}
