package photons3d

import "math"

// Film accumulates sensor hits. Row 0 is the top of the image.
type Film struct {
	Nx, Ny int
	Buf    []Real // flat: (j*Nx + i)*3 + c
}

// NewFilm allocates a zeroed Nx×Ny RGB buffer.
func NewFilm(nx, ny int) *Film {
	if nx <= 0 || ny <= 0 {
		panic("film resolution must be positive")
	}
	f := &Film{Nx: nx, Ny: ny, Buf: make([]Real, nx*ny*3)}
	DebugLog("Created film %dx%d", nx, ny)
	return f
}

// Flat buffer index helper (c ∈ {ChR,ChG,ChB}).
func (f *Film) idx(i, j, c int) int {
	return (j*f.Nx+i)*3 + c
}

// PixelOf maps sensor coordinates in [0,1]² to a pixel.
func (f *Film) PixelOf(u, v Real) (ok bool, i, j int) {
	if !(u >= 0 && u <= 1 && v >= 0 && v <= 1) {
		return false, 0, 0
	}
	i = min(int(u*Real(f.Nx)), f.Nx-1)
	j = min(int(v*Real(f.Ny)), f.Ny-1)
	return true, i, j
}

// Deposit adds color to the pixel under (u, v). Points off the film are dropped.
func (f *Film) Deposit(u, v Real, c RGB) bool {
	ok, i, j := f.PixelOf(u, v)
	if !ok {
		return false
	}
	base := f.idx(i, j, ChR)
	f.Buf[base+ChR] += c.R
	f.Buf[base+ChG] += c.G
	f.Buf[base+ChB] += c.B
	return true
}

// Merge adds o into f. Both films must have the same size.
func (f *Film) Merge(o *Film) {
	if o.Nx != f.Nx || o.Ny != f.Ny {
		panic("film size mismatch")
	}
	for k, x := range o.Buf {
		f.Buf[k] += x
	}
}

// Reset zeroes the buffer.
func (f *Film) Reset() {
	clear(f.Buf)
}

// Peak is the largest channel value; 1 for a black film.
func (f *Film) Peak() Real {
	m := 0.0
	for _, x := range f.Buf {
		m = math.Max(m, x)
	}
	if m == 0 {
		return 1
	}
	return m
}

// toneMap scales v by 1/peak into [0,1] and applies gamma.
func toneMap(v, scale, gamma Real) Real {
	if v <= 0 {
		return 0
	}
	n := v * scale
	if n > 1 {
		n = 1
	}
	if gamma != 1 {
		n = math.Pow(n, 1.0/gamma)
	}
	return n
}
