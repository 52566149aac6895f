package render

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects one of the output encodings.
type Format int

const (
	// Table is a tab-separated table: image name, "R\tG\tB" header, one
	// line per pixel.
	Table Format = iota
	// Channels is three flat uint8_t arrays, one per channel.
	Channels
	// Structs is a single array of {R, G, B} struct literals.
	Structs
)

var formatNames = map[Format]string{
	Table:    "table",
	Channels: "channels",
	Structs:  "structs",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext is the file extension of an output in this format.
func (f Format) Ext() string {
	if f == Table {
		return ".txt"
	}
	return ".h"
}

// DefaultName is the output file name used for src when none is given.
// Headers share one fixed name unless several images are converted at once.
func (f Format) DefaultName(src string, batch bool) string {
	if f != Table && !batch {
		return "bitmap.h"
	}
	return Stem(src) + f.Ext()
}

// Stem is the base name of a path or URL without its last extension.
func Stem(src string) string {
	if i := strings.IndexAny(src, "?#"); i >= 0 && strings.Contains(src, "://") {
		src = src[:i]
	}
	base := filepath.Base(filepath.FromSlash(src))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "txt", "a":
		return Table, nil
	case "channels", "flat", "b":
		return Channels, nil
	case "structs", "struct", "c":
		return Structs, nil
	}
	return 0, fmt.Errorf("unknown output format %q", s)
}
