package render

import (
	"errors"
	"image"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitmapgen/pkg/bitmap"
)

func rampGrid(n int) *bitmap.Grid {
	g := bitmap.NewGrid(image.Rect(0, 0, n, 1))
	for i := 0; i < n; i++ {
		g.SetPixel(i, 0, bitmap.Pixel{R: uint8(i % 32), G: uint8(i % 64), B: uint8(31 - i%32)})
	}
	return g
}

func fullGrid() *bitmap.Grid {
	g := bitmap.NewGrid(image.Rect(0, 0, 96, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 96; x++ {
			g.SetPixel(x, y, bitmap.Pixel{R: uint8(x % 32), G: uint8(y), B: uint8((x + y) % 32)})
		}
	}
	return g
}

func TestRender_Table(t *testing.T) {
	out, err := New().Bytes(Table, "img/photo.jpg", rampGrid(3))
	require.NoError(t, err)
	assert.Equal(t, "img/photo.jpg\nR\tG\tB\n0\t0\t31\n1\t1\t30\n2\t2\t29\n", string(out))
}

func TestRender_TableLineCount(t *testing.T) {
	out, err := New().Bytes(Table, "photo.jpg", fullGrid())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	assert.Len(t, lines, 6146)
	assert.Equal(t, "R\tG\tB", lines[1])
	assert.True(t, strings.HasSuffix(string(out), "\n"))
	assert.False(t, strings.HasSuffix(string(out), "\n\n"))
}

func TestRender_ChannelsWrap(t *testing.T) {
	g := bitmap.NewGrid(image.Rect(0, 0, 18, 1))
	for i := 0; i < 18; i++ {
		g.SetPixel(i, 0, bitmap.Pixel{R: uint8(i)})
	}

	out, err := New().Bytes(Channels, "", g)
	require.NoError(t, err)

	zeros := "    0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,\n    0, 0\n"
	want := "#include <stdint.h> // For uint8_t\n" +
		"\n" +
		"uint8_t bitmapR[] = {\n" +
		"    0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,\n" +
		"    16, 17\n" +
		"};\n" +
		"\n" +
		"uint8_t bitmapG[] = {\n" + zeros + "};\n" +
		"\n" +
		"uint8_t bitmapB[] = {\n" + zeros + "};\n"
	assert.Equal(t, want, string(out))
}

var arrayRe = regexp.MustCompile(`(?s)(\w+) (\w+)\[\] = \{\n(.*?)\n\};\n`)

func TestRender_ChannelsCounts(t *testing.T) {
	out, err := New().Bytes(Channels, "", fullGrid())
	require.NoError(t, err)

	decls := arrayRe.FindAllStringSubmatch(string(out), -1)
	require.Len(t, decls, 3)

	for i, name := range []string{"bitmapR", "bitmapG", "bitmapB"} {
		assert.Equal(t, "uint8_t", decls[i][1])
		assert.Equal(t, name, decls[i][2])

		body := decls[i][3]
		assert.NotContains(t, body, ",\n}")
		lines := strings.Split(body, "\n")
		assert.Len(t, lines, 6144/16)
		for _, line := range lines {
			assert.True(t, strings.HasPrefix(line, "    "))
		}
		values := strings.Split(strings.ReplaceAll(body, "\n", ""), ",")
		assert.Len(t, values, 6144)
	}
}

func TestRender_Structs(t *testing.T) {
	out, err := New().Bytes(Structs, "", rampGrid(6))
	require.NoError(t, err)

	want := "#include <stdint.h> // For uint8_t\n" +
		"#include \"screen.h\" // For colorInstance\n" +
		"\n" +
		"colorInstance bitmap[] = {\n" +
		"    {0, 0, 31}, {1, 1, 30}, {2, 2, 29}, {3, 3, 28},\n" +
		"    {4, 4, 27}, {5, 5, 26}\n" +
		"};\n"
	assert.Equal(t, want, string(out))
}

func TestRender_StructsCounts(t *testing.T) {
	out, err := New().Bytes(Structs, "", fullGrid())
	require.NoError(t, err)

	decls := arrayRe.FindAllStringSubmatch(string(out), -1)
	require.Len(t, decls, 1)
	assert.Equal(t, "colorInstance", decls[0][1])
	assert.Len(t, regexp.MustCompile(`\{\d+, \d+, \d+\}`).FindAllString(decls[0][3], -1), 6144)
	assert.Len(t, strings.Split(decls[0][3], "\n"), 6144/4)
}

func TestRender_Options(t *testing.T) {
	r := New(
		WithValuesPerLine(4),
		WithStructsPerLine(2),
		WithIndent("\t"),
		WithArrayNames("red", "green", "blue"),
		WithStruct("rgb_t", "image", "colors.h"),
	)

	out, err := r.Bytes(Channels, "", rampGrid(5))
	require.NoError(t, err)
	assert.Contains(t, string(out), "uint8_t red[] = {\n\t0, 1, 2, 3,\n\t4\n};\n")
	assert.Contains(t, string(out), "uint8_t green[]")
	assert.Contains(t, string(out), "uint8_t blue[]")

	out, err = r.Bytes(Structs, "", rampGrid(3))
	require.NoError(t, err)
	assert.Equal(t, "#include <stdint.h> // For uint8_t\n"+
		"#include \"colors.h\" // For rgb_t\n\n"+
		"rgb_t image[] = {\n\t{0, 0, 31}, {1, 1, 30},\n\t{2, 2, 29}\n};\n", string(out))
}

func TestRender_Deterministic(t *testing.T) {
	for _, f := range []Format{Table, Channels, Structs} {
		a, err := New().Bytes(f, "photo.jpg", fullGrid())
		require.NoError(t, err)
		b, err := New().Bytes(f, "photo.jpg", fullGrid())
		require.NoError(t, err)
		assert.Equal(t, a, b, f.String())
	}
}

func TestRender_EmptyGrid(t *testing.T) {
	out, err := New().Bytes(Structs, "", bitmap.NewGrid(image.Rectangle{}))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(out), "colorInstance bitmap[] = {\n};\n"))
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := New().Bytes(Format(42), "", rampGrid(1))
	assert.Error(t, err)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRender_WriteError(t *testing.T) {
	err := New().Render(failWriter{}, Table, "x", rampGrid(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestParseFormat(t *testing.T) {
	tcs := []struct {
		in   string
		want Format
	}{
		{in: "table", want: Table},
		{in: "TXT", want: Table},
		{in: "channels", want: Channels},
		{in: "flat", want: Channels},
		{in: " structs ", want: Structs},
		{in: "struct", want: Structs},
	}
	for _, tc := range tcs {
		f, err := ParseFormat(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, f, tc.in)
	}

	_, err := ParseFormat("png")
	assert.Error(t, err)
}

func TestFormat_DefaultName(t *testing.T) {
	assert.Equal(t, "photo.txt", Table.DefaultName("pics/photo.jpg", false))
	assert.Equal(t, "photo.tar.txt", Table.DefaultName("photo.tar.gz", false))
	assert.Equal(t, "bitmap.h", Channels.DefaultName("pics/photo.jpg", false))
	assert.Equal(t, "bitmap.h", Structs.DefaultName("photo.jpg", false))
	assert.Equal(t, "photo.h", Structs.DefaultName("photo.jpg", true))
	assert.Equal(t, "cat.txt", Table.DefaultName("https://example.com/img/cat.png?size=large", false))
}
