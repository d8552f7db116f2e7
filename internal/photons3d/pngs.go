package photons3d

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// toNRGBA64 renders the film with per-film peak normalization and gamma.
func toNRGBA64(f *Film, gamma Real) *image.NRGBA64 {
	scale := 1 / f.Peak()
	toU16 := func(v Real) uint16 {
		return uint16(math.Round(toneMap(v, scale, gamma) * 65535.0))
	}
	img := image.NewNRGBA64(image.Rect(0, 0, f.Nx, f.Ny))
	const pxBytes = 8 // 4 channels * 2 bytes/channel
	for j := 0; j < f.Ny; j++ {
		rowOff := j * img.Stride
		for i := 0; i < f.Nx; i++ {
			base := f.idx(i, j, ChR)
			r := toU16(f.Buf[base+ChR])
			g := toU16(f.Buf[base+ChG])
			b := toU16(f.Buf[base+ChB])
			a := uint16(0xFFFF)

			p := rowOff + i*pxBytes
			// NRGBA64 stores big-endian uint16 per channel: R,G, B, A.
			img.Pix[p+0] = uint8(r >> 8)
			img.Pix[p+1] = uint8(r)
			img.Pix[p+2] = uint8(g >> 8)
			img.Pix[p+3] = uint8(g)
			img.Pix[p+4] = uint8(b >> 8)
			img.Pix[p+5] = uint8(b)
			img.Pix[p+6] = uint8(a >> 8)
			img.Pix[p+7] = uint8(a)
		}
	}
	return img
}

// SavePNG16 writes the film as a lossless 16-bit PNG.
func SavePNG16(f *Film, path string, gamma Real) error {
	fmt.Printf("[PNG] %s\n", path)
	img := toNRGBA64(f, gamma)
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
