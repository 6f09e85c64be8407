package terrain

// IndexCount is the number of indices BuildIndices emits.
func IndexCount(width, height int) int {
	if width < 2 || height < 2 {
		return 0
	}
	return 6 * (width - 1) * (height - 1)
}

// BuildIndices triangulates a width x height vertex grid. The last row and
// column own no cell. Each cell emits
//
//	A = {pos+width, pos, pos+width+1}
//	B = {pos+1, pos+1+width, pos}
//
// and FlatNormals relies on this winding to point normals up.
func BuildIndices(width, height int) []uint32 {
	indices := make([]uint32, 0, IndexCount(width, height))
	w := uint32(width)
	for y := 0; y < height-1; y++ {
		for x := 0; x < width-1; x++ {
			pos := uint32(x + y*width)
			indices = append(indices,
				pos+w, pos, pos+w+1,
				pos+1, pos+1+w, pos,
			)
		}
	}
	return indices
}
