package photons3d

import (
	"fmt"
	"io"
)

// DumpBodyIndex prints the index layout: R-tree size and depth, every node
// rectangle and the unbounded bodies that bypass the tree.
func DumpBodyIndex(w io.Writer, scene *Scene) bool {
	x := scene.index
	if x == nil {
		fmt.Fprintln(w, "[INDEX] <none>")
		return false
	}
	fmt.Fprintf(w, "[INDEX] bounded=%d depth=%d unbounded=%d world=%s\n",
		x.tree.Size(), x.tree.Depth(), len(x.unbounded), fmtBox(x.world))
	for i, r := range x.tree.GetAllBoundingBoxes() {
		fmt.Fprintf(w, "\tRECT %d: %s\n", i, r)
	}
	for _, ord := range x.unbounded {
		fmt.Fprintf(w, "\tUNBOUNDED %d: %s\n", ord, scene.Bodies[ord].Name)
	}
	return true
}

func fmtBox(b AABB) string {
	if b.Empty() {
		return "<empty>"
	}
	return fmt.Sprintf("min=(%.5g,%.5g,%.5g) max=(%.5g,%.5g,%.5g)",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}
