package graphics

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// MaxTextureSlots is how many sequential texture units BindAll will fill.
const MaxTextureSlots = 16

type textureEntry struct {
	tag string
	id  uint32
}

// TextureRegistry owns every texture the scene loads. Sampler slots are
// positional: a texture's slot is its registration index, so slots are not
// stable across re-registration and draws must resolve them through
// SlotFor.
type TextureRegistry struct {
	entries []textureEntry
}

func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{}
}

// Load decodes the image at path and registers the uploaded texture under
// tag. Only 3- and 4-channel images are supported; any other pixel layout,
// like a decode failure, fails this one load without aborting scene setup.
func (r *TextureRegistry) Load(path, tag string) error {
	rgba, channels, err := decodeImage(path)
	if err != nil {
		log.Error("texture load failed", "path", path, "tag", tag, "err", err)
		return err
	}

	id := uploadTexture(rgba)
	r.register(tag, id)
	log.Info("loaded texture",
		"tag", tag,
		"slot", len(r.entries)-1,
		"size", fmt.Sprintf("%dx%d", rgba.Rect.Dx(), rgba.Rect.Dy()),
		"channels", channels)
	return nil
}

func (r *TextureRegistry) register(tag string, id uint32) {
	if r.SlotFor(tag) >= 0 {
		log.Warn("texture tag already registered, new entry is shadowed", "tag", tag)
	}
	r.entries = append(r.entries, textureEntry{tag: tag, id: id})
}

// BindAll binds every registered texture to sequential texture units
// 0..N-1 in registration order, up to the slot limit.
func (r *TextureRegistry) BindAll() {
	for i, e := range r.entries {
		if i >= MaxTextureSlots {
			log.Warn("texture slot limit reached, texture left unbound", "tag", e.tag)
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, e.id)
	}
}

// SlotFor returns the sampler slot for tag, or -1 if the tag was never
// registered. With duplicate tags the first registration wins.
func (r *TextureRegistry) SlotFor(tag string) int32 {
	for i, e := range r.entries {
		if e.tag == tag {
			return int32(i)
		}
	}
	return -1
}

// Len reports how many textures are registered.
func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// Destroy deletes every GL texture and clears the registry.
func (r *TextureRegistry) Destroy() {
	for i := range r.entries {
		gl.DeleteTextures(1, &r.entries[i].id)
	}
	r.entries = nil
}

// decodeImage reads and decodes an image file, converts it to RGBA and
// flips it vertically so row 0 lands at the GL bottom-left origin. The
// returned channel count reflects the source layout, not the converted
// pixels.
func decodeImage(path string) (*image.RGBA, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open texture file: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode image: %v", err)
	}

	channels := colorChannels(img)
	if channels != 3 && channels != 4 {
		return nil, 0, fmt.Errorf("unsupported channel layout %T", img)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	flipVertical(rgba)
	return rgba, channels, nil
}

// colorChannels maps a decoded image's native layout onto a channel count.
// Anything that is not 3- or 4-channel color reports 0 (unsupported).
func colorChannels(img image.Image) int {
	switch img.(type) {
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.NYCbCrA:
		return 4
	default:
		return 0
	}
}

func flipVertical(img *image.RGBA) {
	rowLen := img.Stride
	tmp := make([]byte, rowLen)
	h := img.Rect.Dy()
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*rowLen : y*rowLen+rowLen]
		bottom := img.Pix[(h-1-y)*rowLen : (h-1-y)*rowLen+rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// uploadTexture creates a 2D texture with repeat wrapping and linear
// filtering and generates its mip chain.
func uploadTexture(rgba *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(rgba.Rect.Dx()),
		int32(rgba.Rect.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}
