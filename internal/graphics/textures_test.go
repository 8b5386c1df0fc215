package graphics

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// Registry bookkeeping is exercised without a GL context: slots derive
// from registration order alone, so neither upload nor BindAll is needed.

func TestSlotForRegistrationOrder(t *testing.T) {
	r := NewTextureRegistry()
	r.register("a", 10)
	r.register("b", 11)
	r.register("c", 12)

	cases := []struct {
		tag  string
		want int32
	}{
		{"a", 0},
		{"b", 1},
		{"c", 2},
		{"missing", -1},
	}
	for _, tc := range cases {
		if got := r.SlotFor(tc.tag); got != tc.want {
			t.Errorf("SlotFor(%q) = %d, want %d", tc.tag, got, tc.want)
		}
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestSlotForDuplicateTagFirstWins(t *testing.T) {
	r := NewTextureRegistry()
	r.register("apple", 10)
	r.register("table", 11)
	r.register("apple", 12)

	if got := r.SlotFor("apple"); got != 0 {
		t.Errorf("duplicate tag should resolve to first registration (slot 0), got %d", got)
	}
	if r.Len() != 3 {
		t.Errorf("duplicate must still be stored, Len() = %d", r.Len())
	}
}

func TestColorChannels(t *testing.T) {
	rect := image.Rect(0, 0, 2, 2)
	cases := []struct {
		name string
		img  image.Image
		want int
	}{
		{"ycbcr-jpeg", image.NewYCbCr(rect, image.YCbCrSubsampleRatio420), 3},
		{"rgba", image.NewRGBA(rect), 4},
		{"nrgba-png", image.NewNRGBA(rect), 4},
		{"gray-unsupported", image.NewGray(rect), 0},
		{"paletted-unsupported", image.NewPaletted(rect, color.Palette{color.Black}), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := colorChannels(tc.img); got != tc.want {
				t.Errorf("colorChannels(%T) = %d, want %d", tc.img, got, tc.want)
			}
		})
	}
}

func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestDecodeImageFlipsVertically writes a 1x2 image with distinct rows and
// checks the decode puts the top row at the bottom, where GL expects it.
func TestDecodeImageFlipsVertically(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255}) // top row red
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255}) // bottom row blue

	rgba, channels, err := decodeImage(writeTestPNG(t, src))
	if err != nil {
		t.Fatal(err)
	}
	if channels != 4 {
		t.Errorf("channels = %d, want 4", channels)
	}

	top := rgba.RGBAAt(0, 0)
	if top.B != 255 || top.R != 0 {
		t.Errorf("row 0 should hold the source bottom row (blue), got %+v", top)
	}
	bottom := rgba.RGBAAt(0, 1)
	if bottom.R != 255 || bottom.B != 0 {
		t.Errorf("row 1 should hold the source top row (red), got %+v", bottom)
	}
}

func TestDecodeImageUnsupportedLayout(t *testing.T) {
	path := writeTestPNG(t, image.NewGray(image.Rect(0, 0, 2, 2)))
	if _, _, err := decodeImage(path); err == nil {
		t.Fatal("grayscale image should be rejected as unsupported")
	}
}

func TestDecodeImageMissingFile(t *testing.T) {
	if _, _, err := decodeImage(filepath.Join(t.TempDir(), "nope.jpg")); err == nil {
		t.Fatal("missing file should fail decode")
	}
}
