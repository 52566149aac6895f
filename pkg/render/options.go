package render

type Option func(r *Renderer)

func WithValuesPerLine(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.valuesPerLine = n
		}
	}
}

func WithStructsPerLine(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.structsPerLine = n
		}
	}
}

func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// WithArrayNames sets the red, green and blue array names of Channels.
func WithArrayNames(red, green, blue string) Option {
	return func(r *Renderer) {
		r.arrayNames = [3]string{red, green, blue}
	}
}

// WithStruct sets the element type, array name and the header that
// declares the type for Structs.
func WithStruct(typeName, arrayName, header string) Option {
	return func(r *Renderer) {
		r.structType = typeName
		r.structName = arrayName
		r.structHeader = header
	}
}
