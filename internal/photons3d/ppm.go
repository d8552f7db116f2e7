package photons3d

import (
	"bufio"
	"fmt"
	"math"
	"os"
)

// SavePPM writes the film as a plain-text (P3) PPM, normalized to its peak.
func SavePPM(f *Film, path string, gamma Real) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "P3 %d %d 255\n", f.Nx, f.Ny)
	scale := 1 / f.Peak()
	for j := 0; j < f.Ny; j++ {
		for i := 0; i < f.Nx; i++ {
			base := f.idx(i, j, ChR)
			fmt.Fprintf(w, "%d %d %d \n",
				int(math.Round(255*toneMap(f.Buf[base+ChR], scale, gamma))),
				int(math.Round(255*toneMap(f.Buf[base+ChG], scale, gamma))),
				int(math.Round(255*toneMap(f.Buf[base+ChB], scale, gamma))),
			)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return out.Close()
}
