package qrcode

// Per-version capacity tables. The literal numbers are the standard JIS
// X 0510:2004 / ISO 18004 tables (grounded on grkuntzmd-qrcodegen's
// package.go, which carries the same tables in the conventional L,M,Q,H
// column order); VersionEntry reindexes them into this encoder's internal
// eccIndex order (L=1, M=0, Q=3, H=2, per spec.md §4.2 and DESIGN.md).

// eccCodewordsPerBlockByLevel[level][version] in conventional L,M,Q,H order,
// version 1-indexed (index 0 unused).
var eccCodewordsPerBlockByLevel = [4][41]int{
	// Low
	{0, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	// Medium
	{0, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	// Quartile
	{0, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	// High
	{0, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

// numBlocksByLevel[level][version] in conventional L,M,Q,H order.
var numBlocksByLevel = [4][41]int{
	// Low
	{0, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	// Medium
	{0, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	// Quartile
	{0, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	// High
	{0, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// VersionEntry holds the per-version tables needed to address a version's
// capacity and layout, indexed by eccIndex (spec.md §3).
type VersionEntry struct {
	EccCodewordsPerBlock [4]int // [eccIndex] -> ECC codewords per block
	NumBlocks            [4]int // [eccIndex] -> number of blocks
	AlignmentCenters     []int  // ascending alignment-pattern center coordinates
}

var versionTable [41]VersionEntry

func init() {
	// conventional index -> eccIndex: Low=0->1, Medium=1->0, Quartile=2->3, High=3->2.
	convToIdx := [4]int{1, 0, 3, 2}

	for v := 1; v <= 40; v++ {
		var entry VersionEntry
		for conv := 0; conv < 4; conv++ {
			idx := convToIdx[conv]
			entry.EccCodewordsPerBlock[idx] = eccCodewordsPerBlockByLevel[conv][v]
			entry.NumBlocks[idx] = numBlocksByLevel[conv][v]
		}
		entry.AlignmentCenters = alignmentCenters(v)
		versionTable[v] = entry
	}
}

// alignmentCenters computes the ascending list of alignment-pattern center
// coordinates for a version, per the closed-form step formula (grounded on
// grkuntzmd-qrcodegen.getAlignmentPatternPositions, mathematically identical
// to the standard 40-row table).
func alignmentCenters(version int) []int {
	if version == 1 {
		return nil
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 {
		step = 26
	} else {
		step = (version*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}

	result := make([]int, numAlign)
	result[0] = 6
	pos := version*4 + 17 - 7
	for i := len(result) - 1; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}
	return result
}

// numFullBits returns the raw symbol cell count before ECC is subtracted,
// per spec.md §4.3.
func numFullBits(version int) int {
	n := 16*version*version + 128*version + 64
	if version >= 7 {
		n -= 36
	}
	m := len(versionTable[version].AlignmentCenters)
	if m > 0 {
		n -= 25*m*m - 10*m - 55
	}
	return n
}

// dataBits returns the number of bits available for data (mode+length+
// payload+terminator) at the given version/level, per spec.md §4.3.
func dataBits(version int, level EccLevel) int {
	e := versionTable[version]
	idx := level.index()
	return (numFullBits(version) &^ 7) - 8*e.EccCodewordsPerBlock[idx]*e.NumBlocks[idx]
}

// dataCodewords returns the number of 8-bit data codewords (not counting
// ECC) available at the given version/level.
func dataCodewords(version int, level EccLevel) int {
	return dataBits(version, level) / 8
}

// maxPayloadLength returns the maximum payload length, in mode-specific
// units (characters for NUMERIC/ALPHANUMERIC, bytes for OCTET), per spec.md
// §4.3.
func maxPayloadLength(version int, level EccLevel, mode Mode) int {
	nbits := dataBits(version, level) - 4 - mode.charCountBits(version)
	if nbits < 0 {
		return -1
	}
	switch mode {
	case ModeNumeric:
		extra := 0
		switch rem := nbits % 10; {
		case rem < 4:
			extra = 0
		case rem < 7:
			extra = 1
		default:
			extra = 2
		}
		return (nbits/10)*3 + extra
	case ModeAlphanumeric:
		extra := 0
		if nbits%11 >= 6 {
			extra = 1
		}
		return (nbits/11)*2 + extra
	case ModeOctet:
		return nbits / 8
	default:
		return 0
	}
}
