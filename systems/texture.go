package systems

import (
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is the repeating image laid over the cave surface through the
// mesh UVs
type Texture struct {
	Image *ebiten.Image
	Size  int // Width and height in pixels of one repeat
}

// NewTextureFromFile loads a square texture from an image file
func NewTextureFromFile(filename string) (*Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	size := min(bounds.Dx(), bounds.Dy())
	return &Texture{
		Image: ebiten.NewImageFromImage(img),
		Size:  size,
	}, nil
}

// NewRockTexture builds a two-tone stone texture so the viewer needs no
// asset files
func NewRockTexture(size int) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	dark := color.RGBA{92, 88, 84, 255}
	light := color.RGBA{118, 112, 104, 255}

	cell := max(size/4, 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := dark
			// Offset every other row of blocks like laid stone
			shift := 0
			if (y/cell)%2 == 1 {
				shift = cell / 2
			}
			if ((x+shift)/cell+y/cell)%2 == 0 {
				c = light
			}
			// Mortar lines
			if (x+shift)%cell == 0 || y%cell == 0 {
				c = color.RGBA{70, 66, 62, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}

	return &Texture{
		Image: ebiten.NewImageFromImage(img),
		Size:  size,
	}
}
