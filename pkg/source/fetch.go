package source

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := l.cli.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.IsError() {
		return nil, fmt.Errorf("download %s: %s", url, resp.Status())
	}

	var buf bytes.Buffer
	dst := lo.Ternary[io.Writer](
		l.progress,
		io.MultiWriter(&buf, progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", url))),
		&buf,
	)
	if _, err := io.Copy(dst, resp.RawBody()); err != nil {
		return nil, err
	}

	l.log.With(zap.String("url", url), zap.Int("bytes", buf.Len())).Debug("downloaded")
	return buf.Bytes(), nil
}
