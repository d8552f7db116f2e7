package photons3d

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
)

// GIFAnim collects progressive film snapshots as animation frames.
// delay is in 100ths of a second.
type GIFAnim struct {
	delay int
	gamma Real
	out   gif.GIF
}

func NewGIFAnim(delay int, gamma Real) *GIFAnim {
	return &GIFAnim{delay: delay, gamma: gamma}
}

// Frames returns the number of frames recorded so far.
func (a *GIFAnim) Frames() int { return len(a.out.Image) }

// AddFrame quantizes the current film state into a new frame.
func (a *GIFAnim) AddFrame(f *Film) {
	scale := 1 / f.Peak()
	rgba := image.NewNRGBA(image.Rect(0, 0, f.Nx, f.Ny))
	toByte := func(v Real) uint8 {
		return uint8(math.Round(toneMap(v, scale, a.gamma) * 255))
	}
	for j := 0; j < f.Ny; j++ {
		rowOff := j * rgba.Stride
		for i := 0; i < f.Nx; i++ {
			base := f.idx(i, j, ChR)
			p := rowOff + i*4
			rgba.Pix[p+0] = toByte(f.Buf[base+ChR])
			rgba.Pix[p+1] = toByte(f.Buf[base+ChG])
			rgba.Pix[p+2] = toByte(f.Buf[base+ChB])
			rgba.Pix[p+3] = 255
		}
	}
	// quantize to paletted for GIF
	pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})
	a.out.Image = append(a.out.Image, pimg)
	a.out.Delay = append(a.out.Delay, a.delay)
	fmt.Printf("[GIF] frame %d\n", len(a.out.Image))
}

// Save encodes all frames, looping forever.
func (a *GIFAnim) Save(path string) error {
	if len(a.out.Image) == 0 {
		return fmt.Errorf("no GIF frames to write to %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &a.out)
}
