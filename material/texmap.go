package material

// Texmap references a host-side texture binding. Textures are referenced
// by the translator, never loaded; decoding pixel data is the renderer's
// concern.
type Texmap interface {
	// Name is the host-visible name of the texture binding.
	Name() string

	// Filename is the path of the backing image file.
	Filename() string
}

// BitmapTex is a plain file-backed Texmap.
type BitmapTex struct {
	name     string
	filename string
}

// NewBitmapTex creates a file-backed texture reference. When name is empty
// the filename doubles as the name.
func NewBitmapTex(name, filename string) *BitmapTex {
	if name == "" {
		name = filename
	}
	return &BitmapTex{name: name, filename: filename}
}

func (t *BitmapTex) Name() string     { return t.name }
func (t *BitmapTex) Filename() string { return t.filename }
