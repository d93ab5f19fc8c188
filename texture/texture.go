package texture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Source declares a texture the embedding layer must resolve before first
// use: a name the command stream will reference, and where the pixels come
// from.
type Source struct {
	Name string
	Path string
}

// Texture is an opaque handle over a loaded image: the name the executor
// resolves, the intrinsic dimensions, and an optional source clip for
// sprite-sheet style sub-textures.
type Texture struct {
	name           string
	img            image.Image
	sx, sy, sw, sh float64
}

// FromImage wraps an already-decoded image in a handle covering the whole
// image.
func FromImage(name string, img image.Image) *Texture {
	bounds := img.Bounds()
	return &Texture{
		name: name,
		img:  img,
		sw:   float64(bounds.Dx()),
		sh:   float64(bounds.Dy()),
	}
}

// Load decodes an image file into a texture handle. PNG, JPEG and GIF
// decoders are registered; anything else fails with the decoder's error.
func Load(name, path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", name, err)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", name, err)
	}
	return FromImage(name, img), nil
}

// Sprite returns a handle over the (sx, sy, sw, sh) region of this texture,
// relative to this texture's own clip, so sprites of sprites stay inside
// the original image.
func (t *Texture) Sprite(sx, sy, sw, sh float64) *Texture {
	clip := &Texture{
		name: t.name,
		img:  t.img,
		sx:   t.sx + sx,
		sy:   t.sy + sy,
		sw:   min(sw, t.sw-sx),
		sh:   min(sh, t.sh-sy),
	}
	if clip.sw < 0 {
		clip.sw = 0
	}
	if clip.sh < 0 {
		clip.sh = 0
	}
	return clip
}

func (t *Texture) Name() string { return t.name }

// Image returns the decoded pixels backing this handle, nil for handles
// that only name a remote texture.
func (t *Texture) Image() image.Image { return t.img }

// Clip returns the source region this handle draws from.
func (t *Texture) Clip() (sx, sy, sw, sh float64) {
	return t.sx, t.sy, t.sw, t.sh
}

// Width is the drawn width: the clip width, which for an unclipped handle
// is the intrinsic image width.
func (t *Texture) Width() float64 { return t.sw }

func (t *Texture) Height() float64 { return t.sh }

func (t *Texture) String() string {
	return fmt.Sprintf("Texture(name='%s', clip=(%.2f, %.2f, %.2f, %.2f))", t.name, t.sx, t.sy, t.sw, t.sh)
}
