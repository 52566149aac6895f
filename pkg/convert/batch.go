package convert

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

var ErrOutputCollision = errors.New("outputs collide")

// ConvertAll converts every source independently, running up to the
// configured number of jobs at once. Duplicate sources are converted once.
// The first failure cancels the jobs not yet started and is returned.
func (c *Converter) ConvertAll(ctx context.Context, sources []string) ([]*Result, error) {
	sources = lo.Uniq(sources)
	batch := len(sources) > 1

	jobs := make([]Job, len(sources))
	seen := make(map[string]string, len(sources))
	for i, src := range sources {
		jobs[i] = Job{Source: src, Batch: batch}
		out := c.OutputPath(jobs[i])
		if prev, ok := seen[out]; ok {
			return nil, errors.Wrapf(ErrOutputCollision, "%s and %s both write %s", prev, src, out)
		}
		seen[out] = src
	}

	limit := c.jobs
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}

	var bar *progressbar.ProgressBar
	if c.progress {
		bar = progressbar.Default(int64(len(jobs)), "Converting")
	}

	results := make([]*Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := c.Convert(gctx, job)
			if err != nil {
				return err
			}
			results[i] = res
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
