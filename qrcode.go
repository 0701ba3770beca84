package qrcode

// QRCode holds the generated QR code symbol and the configuration that
// produced it.
type QRCode struct {
	Version  int
	EccLevel EccLevel
	Mask     int
	Size     int

	matrix Matrix
}

// New validates data and options (spec.md §4.2) and runs the full encoding
// pipeline (spec.md §2) to produce a QRCode. data must be a string or a
// []byte.
func New(data any, opts Options) (*QRCode, error) {
	cfg, err := resolve(data, opts)
	if err != nil {
		return nil, err
	}

	capacity := dataCodewords(cfg.version, cfg.level)
	dataStream := encodeData(cfg.payload, cfg.mode, cfg.version, capacity)

	entry := versionTable[cfg.version]
	idx := cfg.level.index()
	allCodewords := interleave(dataStream, entry.NumBlocks[idx], entry.EccCodewordsPerBlock[idx])

	m, r := buildMatrix(cfg.version)
	placeData(m, r, allCodewords)
	mask := selectMask(m, r, cfg.level, cfg.mask)

	return &QRCode{
		Version:  cfg.version,
		EccLevel: cfg.level,
		Mask:     mask,
		Size:     len(m),
		matrix:   m,
	}, nil
}

// Generate returns the final N×N matrix of 0/1 values, row-major with
// row 0 at the top and column 0 at the left, per spec.md §6.
func (q *QRCode) Generate() [][]int {
	out := make([][]int, len(q.matrix))
	for i, row := range q.matrix {
		r := make([]int, len(row))
		copy(r, row)
		out[i] = r
	}
	return out
}
