package photons3d

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawRGB64 dumps the film: int32 Nx, Ny, channels (little-endian) followed
// by Nx*Ny*3 float64 values in row-major RGB order.
func (f *Film) SaveRawRGB64(path string) error {
	if f.Nx < 0 || f.Ny < 0 {
		return fmt.Errorf("negative dimensions: Nx=%d Ny=%d", f.Nx, f.Ny)
	}
	// Expect exactly Nx*Ny*3 values in Buf. Use 64-bit multiply to avoid overflow.
	exp64 := int64(f.Nx) * int64(f.Ny) * 3
	if int64(len(f.Buf)) != exp64 {
		return fmt.Errorf("Buf length mismatch: got %d, expected %d (Nx*Ny*3)", len(f.Buf), exp64)
	}

	// Make sure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, h := range []int32{int32(f.Nx), int32(f.Ny), 3} {
		if err := binary.Write(w, binary.LittleEndian, h); err != nil {
			return err
		}
	}
	if exp64 > 0 {
		if err := binary.Write(w, binary.LittleEndian, f.Buf); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return out.Sync()
}
