package photons3d

import (
	"bufio"
	"encoding/binary"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tinyFilm() *Film {
	f := NewFilm(2, 2)
	// a single bright pixel so files are not empty/black
	f.Deposit(0.9, 0.9, RGB{1, 0.5, 0.25})
	return f
}

func TestFilmDeposit(t *testing.T) {
	f := NewFilm(4, 2)
	tests := []struct {
		u, v Real
		ok   bool
		i, j int
	}{
		{0, 0, true, 0, 0},
		{0.5, 0.5, true, 2, 1},
		{1, 1, true, 3, 1},
		{0.74, 0.49, true, 2, 0},
		{-0.01, 0.5, false, 0, 0},
		{0.5, 1.01, false, 0, 0},
	}
	for _, tc := range tests {
		ok, i, j := f.PixelOf(tc.u, tc.v)
		if ok != tc.ok || i != tc.i || j != tc.j {
			t.Errorf("PixelOf(%g,%g) = %v,%d,%d want %v,%d,%d", tc.u, tc.v, ok, i, j, tc.ok, tc.i, tc.j)
		}
	}
	if !f.Deposit(0.5, 0.5, RGB{1, 0, 0}) || !f.Deposit(0.6, 0.9, RGB{1, 0, 0.5}) {
		t.Fatal("deposit dropped")
	}
	if f.Deposit(2, 0, RGB{1, 1, 1}) {
		t.Fatal("deposit off film accepted")
	}
	base := f.idx(2, 1, ChR)
	if f.Buf[base+ChR] != 2 || f.Buf[base+ChB] != 0.5 || f.Peak() != 2 {
		t.Fatalf("pixel = %v peak = %g", f.Buf[base:base+3], f.Peak())
	}
}

func TestFilmMergeAndReset(t *testing.T) {
	a, b := tinyFilm(), tinyFilm()
	a.Merge(b)
	base := a.idx(1, 1, ChR)
	if a.Buf[base+ChR] != 2 || a.Buf[base+ChG] != 1 {
		t.Fatalf("merge: %v", a.Buf[base:base+3])
	}
	a.Reset()
	if a.Peak() != 1 || a.Buf[base] != 0 {
		t.Fatal("reset left data")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("size mismatch did not panic")
		}
	}()
	a.Merge(NewFilm(3, 2))
}

func TestSavePPM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.ppm")
	if err := SavePPM(tinyFilm(), path, 1); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "P3 2 2 255" || len(lines) != 5 {
		t.Fatalf("unexpected ppm:\n%s", data)
	}
	if strings.TrimSpace(lines[4]) != "255 128 64" || strings.TrimSpace(lines[1]) != "0 0 0" {
		t.Fatalf("pixel lines %q / %q", lines[1], lines[4])
	}
}

func TestSavePNG16(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	if err := SavePNG16(tinyFilm(), path, 0.8); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("png not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	r, _, _, _ := img.At(1, 1).RGBA()
	r0, _, _, _ := img.At(0, 0).RGBA()
	if r != 0xFFFF || r0 != 0 {
		t.Fatalf("pixels r(1,1)=%d r(0,0)=%d", r, r0)
	}
}

func TestGIFAnim(t *testing.T) {
	a := NewGIFAnim(5, 0.8)
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := a.Save(path); err == nil {
		t.Fatal("empty animation saved")
	}
	f := tinyFilm()
	a.AddFrame(f)
	f.Deposit(0, 0, RGB{1, 1, 1})
	a.AddFrame(f)
	if err := a.Save(path); err != nil {
		t.Fatal(err)
	}
	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("gif not written: %v", err)
	}
	defer in.Close()
	g, err := gif.DecodeAll(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 2 || g.Delay[1] != 5 {
		t.Fatalf("frames=%d delays=%v", len(g.Image), g.Delay)
	}
}

func TestFilmSaveRawRGB64(t *testing.T) {
	f := NewFilm(3, 2)
	for k := range f.Buf {
		f.Buf[k] = Real(k) + 0.25
	}
	path := filepath.Join(t.TempDir(), "sub", "film.raw")
	if err := f.SaveRawRGB64(path); err != nil {
		t.Fatalf("SaveRawRGB64 error: %v", err)
	}
	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	r := bufio.NewReader(in)
	var hdr [3]int32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		t.Fatal(err)
	}
	if hdr != [3]int32{3, 2, 3} {
		t.Fatalf("header %v", hdr)
	}
	got := make([]float64, len(f.Buf))
	if err := binary.Read(r, binary.LittleEndian, got); err != nil {
		t.Fatal(err)
	}
	for k := range got {
		if got[k] != f.Buf[k] {
			t.Fatalf("value %d mismatch got %v want %v", k, got[k], f.Buf[k])
		}
	}
	st, _ := in.Stat()
	if st.Size() != int64(12+8*len(f.Buf)) {
		t.Fatalf("file size %d", st.Size())
	}
}

func TestFilmSaveRawRGB64Errors(t *testing.T) {
	f := &Film{Nx: 1, Ny: 1, Buf: make([]Real, 2)}
	if err := f.SaveRawRGB64(filepath.Join(t.TempDir(), "mismatch.raw")); err == nil {
		t.Fatal("expected error for buf length mismatch")
	}
	f = &Film{Nx: -1, Ny: 1, Buf: make([]Real, 3)}
	if err := f.SaveRawRGB64(filepath.Join(t.TempDir(), "neg.raw")); err == nil {
		t.Fatal("expected error for negative dims")
	}
}
