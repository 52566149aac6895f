package bitmap

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNoName     = errors.New("table: missing image name line")
	ErrNoHeader   = errors.New("table: missing channel header line")
	ErrPixelCount = errors.New("table: wrong number of pixel lines")
)

// Table is a tab-separated pixel table read back into memory.
type Table struct {
	Name string
	Grid *Grid
}

// ParseTable reads a pixel table: the image name, a header line that is
// skipped, then one "R G B" line per pixel in scan order. Any whitespace may
// separate the fields. Exactly w*h pixel lines are required.
func ParseTable(r io.Reader, w, h int) (*Table, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		return nil, scanErr(sc, ErrNoName)
	}
	t := &Table{
		Name: strings.TrimRight(sc.Text(), "\r"),
		Grid: NewGrid(image.Rect(0, 0, w, h)),
	}

	if !sc.Scan() {
		return nil, scanErr(sc, ErrNoHeader)
	}

	n, line := 0, 2
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if n >= t.Grid.Len() {
			return nil, errors.Wrapf(ErrPixelCount, "more than %d pixels", t.Grid.Len())
		}

		p, err := parsePixel(text)
		if err != nil {
			return nil, errors.Wrapf(err, "table: line %d", line)
		}
		t.Grid.pixels[n] = p
		n++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "table: read failed")
	}

	if n != t.Grid.Len() {
		return nil, errors.Wrapf(ErrPixelCount, "got %d, want %d", n, t.Grid.Len())
	}

	return t, nil
}

func scanErr(sc *bufio.Scanner, fallback error) error {
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "table: read failed")
	}
	return fallback
}

func parsePixel(text string) (Pixel, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Pixel{}, fmt.Errorf("want 3 fields, got %d", len(fields))
	}

	var vs [3]uint8
	for i, bits := range [3]uint{RedBits, GreenBits, BlueBits} {
		v, err := strconv.ParseUint(fields[i], 10, 8)
		if err != nil {
			return Pixel{}, err
		}
		if v > uint64(1)<<bits-1 {
			return Pixel{}, fmt.Errorf("value %d overflows %d bits", v, bits)
		}
		vs[i] = uint8(v)
	}

	return Pixel{R: vs[0], G: vs[1], B: vs[2]}, nil
}
