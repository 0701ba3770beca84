package qrcode

// calculateEcc computes the k error-correction codewords for one data block,
// using the precomputed degree-k generator polynomial (genPoly, gf256.go),
// per spec.md §4.5.
func calculateEcc(data []byte, k int) []byte {
	g := genPoly[k]
	m := make([]byte, len(data)+k)
	copy(m, data)

	for i := 0; i < len(data); i++ {
		q := gfInvMap[m[i]]
		if q < 0 {
			continue
		}
		for j := 0; j < k; j++ {
			m[i+1+j] ^= byte(gfMap[(q+g[j])%255])
		}
	}

	return m[len(data):]
}

// blockPartition splits data into n blocks per spec.md §4.5: the first
// `pivot` blocks have length `base`, the rest have length `base+1`.
func blockPartition(data []byte, n int) [][]byte {
	l := len(data)
	base := l / n
	pivot := n - l%n

	blocks := make([][]byte, n)
	off := 0
	for j := 0; j < n; j++ {
		blen := base
		if j >= pivot {
			blen++
		}
		blocks[j] = data[off : off+blen]
		off += blen
	}
	return blocks
}

// interleave splits data into n blocks, computes k ECC codewords per block,
// and produces the transmission-order codeword stream per spec.md §4.5.
func interleave(data []byte, n, k int) []byte {
	blocks := blockPartition(data, n)

	base := len(blocks[0])
	pivot := 0
	for _, b := range blocks {
		if len(b) == base {
			pivot++
		}
	}

	eccs := make([][]byte, n)
	for j, b := range blocks {
		eccs[j] = calculateEcc(b, k)
	}

	out := make([]byte, 0, len(data)+n*k)
	for i := 0; i < base; i++ {
		for j := 0; j < n; j++ {
			out = append(out, blocks[j][i])
		}
	}
	for j := pivot; j < n; j++ {
		out = append(out, blocks[j][base])
	}
	for i := 0; i < k; i++ {
		for j := 0; j < n; j++ {
			out = append(out, eccs[j][i])
		}
	}

	return out
}
