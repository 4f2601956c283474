package dct

// Interleave writes the even-indexed elements of src in order, followed by
// the odd-indexed elements in reverse order, into dst.
//
//	src: x0 x1 x2 x3 x4
//	dst: x0 x2 x4 x3 x1
//
// dst must not alias src and must be at least len(src) long.
func Interleave[T any](dst, src []T) {
	n := len(src)
	even, odd := n-n/2, n/2
	for i := range even {
		dst[i] = src[2*i]
	}
	for i := range odd {
		dst[even+i] = src[2*(odd-1-i)+1]
	}
}

// Deinterleave is the inverse permutation of Interleave: even output
// positions receive src[:n-n/2] in order and odd output positions receive
// src reversed, truncated to n/2 elements.
//
// For odd n the even half is one element longer than the odd half.
func Deinterleave[T any](dst, src []T) {
	n := len(src)
	even, odd := n-n/2, n/2
	for i := range even {
		dst[2*i] = src[i]
	}
	for i := range odd {
		dst[2*i+1] = src[n-1-i]
	}
}
