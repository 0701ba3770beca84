package qrcode

// GF(2^8) logarithm/antilog tables, reducing polynomial x^8+x^4+x^3+x^2+1
// (0x11D). MAP[i] = alpha^i; INVMAP is its inverse, with INVMAP[0] = -1 as
// the sentinel for "undefined" (zero has no discrete log).
var (
	gfMap    [255]int
	gfInvMap [256]int

	// genPoly[k] is the degree-k generator polynomial for k in 0..30, stored
	// as exponents of alpha with the leading (always alpha^0 = 1) coefficient
	// omitted. genPoly[0] is empty.
	genPoly [31][]int
)

func init() {
	buildGF256Tables()
	buildGeneratorPolynomials()
}

func buildGF256Tables() {
	gfInvMap[0] = -1
	v := 1
	for i := 0; i < 255; i++ {
		gfMap[i] = v
		gfInvMap[v] = i
		v <<= 1
		if v >= 256 {
			v ^= 0x11D
		}
	}
}

// buildGeneratorPolynomials builds genPoly[1..30] incrementally: genPoly[i]
// is genPoly[i-1] multiplied by (x - alpha^(i-1)), per spec.md §4.1.
func buildGeneratorPolynomials() {
	genPoly[0] = []int{}
	for i := 1; i <= 30; i++ {
		prev := genPoly[i-1]
		poly := make([]int, i)
		for j := 0; j < i; j++ {
			a := 0
			if j < i-1 {
				a = gfMap[prev[j]]
			}
			var prevTerm int
			if j > 0 {
				prevTerm = prev[j-1]
			}
			b := gfMap[(i-1+prevTerm)%255]
			poly[j] = gfInvMap[a^b]
		}
		genPoly[i] = poly
	}
}
