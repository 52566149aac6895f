package convert

import (
	"bitmapgen/pkg/render"
)

type Option func(c *Converter)

func WithFormat(f render.Format) Option {
	return func(c *Converter) {
		c.format = f
	}
}

// WithDir places default-named outputs under dir. Explicit output paths
// are used as given.
func WithDir(dir string) Option {
	return func(c *Converter) {
		c.dir = dir
	}
}

// WithJobs limits how many images ConvertAll processes at once.
func WithJobs(n int) Option {
	return func(c *Converter) {
		c.jobs = n
	}
}

// WithProgress shows a progress bar on stderr during ConvertAll.
func WithProgress(show bool) Option {
	return func(c *Converter) {
		c.progress = show
	}
}
