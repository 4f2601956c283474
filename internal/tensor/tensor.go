package tensor

// Volume returns the number of elements of a row-major array with the given
// shape. ok is false when a dimension is negative.
func Volume(shape []int) (size int, ok bool) {
	size = 1
	for _, d := range shape {
		if d < 0 {
			return 0, false
		}
		size *= d
	}
	return size, true
}

// SwapLast views src as a batch of rows×cols matrices and writes each one
// transposed (cols×rows) into dst. dst must not alias src.
func SwapLast[T any](dst, src []T, rows, cols int) {
	area := rows * cols
	if area == 0 {
		return
	}
	for off := 0; off+area <= len(src); off += area {
		s := src[off : off+area : off+area]
		d := dst[off : off+area : off+area]
		for r := range rows {
			row := s[r*cols : (r+1)*cols]
			for c, v := range row {
				d[c*rows+r] = v
			}
		}
	}
}
