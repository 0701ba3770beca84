package qrcode

// placeData writes the interleaved bitstream into the non-reserved cells of
// the matrix using the standard zig-zag column order, per spec.md §4.7.
func placeData(m Matrix, r reservedMap, data []byte) {
	n := len(m)
	k := 0
	totalBits := len(data) * 8

	dir := -1 // -1 = upward, 1 = downward
	for col := n - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		for row := 0; row < n; row++ {
			y := row
			if dir == -1 {
				y = n - 1 - row
			}
			for c := col; c > col-2; c-- {
				if r[y][c] {
					continue
				}
				bit := 0
				if k < totalBits {
					bit = int(data[k>>3]>>uint(^k&7)) & 1
				}
				m[y][c] = bit
				k++
			}
		}
		dir = -dir
	}
}
