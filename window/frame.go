package window

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"

	"github.com/ushitora-anqou/gbcore/constant"
)

// Image copies a framebuffer into an image of the LCD's native size.
func Image(frame []uint8) (*image.RGBA, error) {
	if len(frame) != frameBytes {
		return nil, fmt.Errorf("invalid framebuffer length: expected %d, got %d", frameBytes, len(frame))
	}
	img := image.NewRGBA(image.Rect(0, 0, constant.LCD_WIDTH, constant.LCD_HEIGHT))
	copy(img.Pix, frame)
	return img, nil
}

// Scale enlarges src by an integer factor without smoothing.
func Scale(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// WritePNG encodes the framebuffer as a PNG, scaled by factor.
func WritePNG(w io.Writer, frame []uint8, factor int) error {
	img, err := Image(frame)
	if err != nil {
		return err
	}
	if err := png.Encode(w, Scale(img, factor)); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// Preview draws the framebuffer on a 24-bit colour terminal at most cols
// characters wide. Each character cell shows two pixels stacked vertically.
func Preview(w io.Writer, frame []uint8, cols int) error {
	img, err := Image(frame)
	if err != nil {
		return err
	}
	if cols <= 0 || cols > constant.LCD_WIDTH {
		cols = constant.LCD_WIDTH
	}
	rows := constant.LCD_HEIGHT * cols / constant.LCD_WIDTH
	rows += rows & 1

	small := image.NewRGBA(image.Rect(0, 0, cols, rows))
	draw.NearestNeighbor.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)

	var sb strings.Builder
	for y := 0; y < rows; y += 2 {
		for x := 0; x < cols; x++ {
			top := small.RGBAAt(x, y)
			bottom := small.RGBAAt(x, y+1)
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		sb.WriteString("\x1b[0m\n")
	}
	_, err = io.WriteString(w, sb.String())
	return err
}
