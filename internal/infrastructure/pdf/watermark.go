package pdf

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	_ "image/jpeg"
)

// Watermark canvas mirrors an A4 page at 150dpi.
const (
	wmPageW = 1240
	wmPageH = 1754
	wmAlpha = 10 // out of 255, ~4% opacity
)

// Vertical centers of the three tiles, as fractions of the page height.
var wmOffsets = []float64{0.18, 0.5, 0.82}

// buildWatermark composes the page background: the logo faded to wmAlpha,
// rotated 45 degrees and stamped at three vertical offsets. Returns the path
// of a temporary PNG the caller must remove.
func buildWatermark(logoPath string) (string, error) {
	f, err := os.Open(logoPath)
	if err != nil {
		return "", fmt.Errorf("pdf: open logo: %w", err)
	}
	defer f.Close()

	logo, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("pdf: decode logo: %w", err)
	}

	page := image.NewNRGBA(image.Rect(0, 0, wmPageW, wmPageH))
	stamp := watermarkStamp(logo, wmPageW*3/5)
	side := stamp.Bounds().Dx()
	x := (wmPageW - side) / 2
	for _, frac := range wmOffsets {
		y := int(float64(wmPageH)*frac) - side/2
		draw.Draw(page, image.Rect(x, y, x+side, y+side), stamp, image.Point{}, draw.Over)
	}

	out, err := os.CreateTemp("", "invoice-watermark-*.png")
	if err != nil {
		return "", fmt.Errorf("pdf: watermark temp file: %w", err)
	}
	defer out.Close()
	if err := png.Encode(out, page); err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("pdf: encode watermark: %w", err)
	}
	return out.Name(), nil
}

// watermarkStamp scales the logo to the given width, rotates it 45 degrees
// around its center and fades it, sampling nearest-neighbor.
func watermarkStamp(src image.Image, width int) *image.NRGBA {
	sb := src.Bounds()
	if sb.Dx() <= 0 || sb.Dy() <= 0 || width <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	height := width * sb.Dy() / sb.Dx()
	if height < 1 {
		height = 1
	}

	side := int(math.Ceil(math.Hypot(float64(width), float64(height))))
	dst := image.NewNRGBA(image.Rect(0, 0, side, side))
	sin, cos := math.Sincos(math.Pi / 4)
	half := float64(side) / 2

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			// Inverse rotation maps the destination pixel back onto the
			// upright scaled logo.
			dx := float64(x) - half
			dy := float64(y) - half
			ux := dx*cos + dy*sin + float64(width)/2
			uy := -dx*sin + dy*cos + float64(height)/2
			if ux < 0 || uy < 0 || ux >= float64(width) || uy >= float64(height) {
				continue
			}
			sx := sb.Min.X + int(ux)*sb.Dx()/width
			sy := sb.Min.Y + int(uy)*sb.Dy()/height
			c := color.NRGBAModel.Convert(src.At(sx, sy)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			c.A = uint8(int(c.A) * wmAlpha / 255)
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}
