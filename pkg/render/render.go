package render

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"bitmapgen/pkg/bitmap"
)

const stdintInclude = "#include <stdint.h> // For uint8_t\n"

func New(opts ...Option) *Renderer {
	r := &Renderer{
		valuesPerLine:  16,
		structsPerLine: 4,
		indent:         "    ",
		arrayNames:     [3]string{"bitmapR", "bitmapG", "bitmapB"},
		structType:     "colorInstance",
		structName:     "bitmap",
		structHeader:   "screen.h",
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Renderer writes a quantized grid as text. It holds no state besides its
// options and is safe for concurrent use.
type Renderer struct {
	valuesPerLine  int
	structsPerLine int
	indent         string
	arrayNames     [3]string
	structType     string
	structName     string
	structHeader   string
}

// Render writes g to w in format f. name is the image name written on the
// first line of a Table.
func (r *Renderer) Render(w io.Writer, f Format, name string, g *bitmap.Grid) error {
	bw := bufio.NewWriter(w)

	switch f {
	case Table:
		r.writeTable(bw, name, g)
	case Channels:
		r.writeChannels(bw, g)
	case Structs:
		r.writeStructs(bw, g)
	default:
		return errors.Errorf("render: unsupported format %s", f)
	}

	return errors.Wrap(bw.Flush(), "render: write failed")
}

// Bytes renders into memory.
func (r *Renderer) Bytes(f Format, name string, g *bitmap.Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, f, name, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeTable(w *bufio.Writer, name string, g *bitmap.Grid) {
	w.WriteString(name)
	w.WriteString("\nR\tG\tB\n")
	for _, p := range g.Pixels() {
		fmt.Fprintf(w, "%d\t%d\t%d\n", p.R, p.G, p.B)
	}
}

func (r *Renderer) writeChannels(w *bufio.Writer, g *bitmap.Grid) {
	w.WriteString(stdintInclude)

	red, green, blue := g.Channels()
	for i, values := range [3][]uint8{red, green, blue} {
		w.WriteString("\n")
		decl := fmt.Sprintf("uint8_t %s[]", r.arrayNames[i])
		r.writeArray(w, decl, lo.Map(values, func(v uint8, _ int) string {
			return strconv.Itoa(int(v))
		}), r.valuesPerLine)
	}
}

func (r *Renderer) writeStructs(w *bufio.Writer, g *bitmap.Grid) {
	w.WriteString(stdintInclude)
	fmt.Fprintf(w, "#include %q // For %s\n\n", r.structHeader, r.structType)

	decl := fmt.Sprintf("%s %s[]", r.structType, r.structName)
	r.writeArray(w, decl, lo.Map(g.Pixels(), func(p bitmap.Pixel, _ int) string {
		return fmt.Sprintf("{%d, %d, %d}", p.R, p.G, p.B)
	}), r.structsPerLine)
}

// writeArray writes an initializer with perLine items per indented line.
// The last line has no trailing comma.
func (r *Renderer) writeArray(w *bufio.Writer, decl string, items []string, perLine int) {
	w.WriteString(decl)
	w.WriteString(" = {\n")

	lines := lo.Chunk(items, perLine)
	for i, line := range lines {
		w.WriteString(r.indent)
		w.WriteString(strings.Join(line, ", "))
		if i < len(lines)-1 {
			w.WriteString(",")
		}
		w.WriteString("\n")
	}

	w.WriteString("};\n")
}
