package photons3d

import (
	"math"
	"path/filepath"
	"strings"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func sqr(x Real) Real { return x * x }

// replaceExt swaps the file extension of path ("pic.ppm" -> "pic.png").
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
