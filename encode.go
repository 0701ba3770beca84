package qrcode

// encodeData produces the padded data codeword stream (mode indicator,
// length indicator, payload, terminator, pad) per spec.md §4.4.
func encodeData(payload []byte, mode Mode, version int, capacityCodewords int) []byte {
	b := &bitBuffer{}

	b.put(int(mode), 4)

	switch mode {
	case ModeNumeric:
		encodeNumeric(b, payload, version)
	case ModeAlphanumeric:
		encodeAlphanumeric(b, payload, version)
	default:
		encodeOctet(b, payload, version)
	}

	capacityBits := capacityCodewords * 8

	// Terminator: up to 4 zero bits, clamped to remaining capacity so an
	// exact-fit payload never overflows the buffer (spec.md §9 open
	// question 2).
	term := 4
	if remaining := capacityBits - b.len(); remaining < term {
		term = remaining
	}
	if term > 0 {
		b.put(0, term)
	}

	// Byte-align by flushing the current partial byte.
	if r := b.len() % 8; r != 0 {
		b.put(0, 8-r)
	}

	// Pad to capacity by alternating 0xEC, 0x11.
	pad := [2]int{0xEC, 0x11}
	i := 0
	for b.len() < capacityBits {
		b.put(pad[i%2], 8)
		i++
	}

	return b.bytes()
}

func encodeNumeric(b *bitBuffer, payload []byte, version int) {
	b.put(len(payload), ModeNumeric.charCountBits(version))
	for i := 0; i < len(payload); i += 3 {
		end := i + 3
		if end > len(payload) {
			end = len(payload)
		}
		group := payload[i:end]
		v := 0
		for _, d := range group {
			v = v*10 + int(d-'0')
		}
		bits := map[int]int{1: 4, 2: 7, 3: 10}[len(group)]
		b.put(v, bits)
	}
}

func encodeAlphanumeric(b *bitBuffer, payload []byte, version int) {
	b.put(len(payload), ModeAlphanumeric.charCountBits(version))
	for i := 0; i < len(payload); i += 2 {
		if i+1 < len(payload) {
			v := alphanumericTable[payload[i]]*45 + alphanumericTable[payload[i+1]]
			b.put(v, 11)
		} else {
			b.put(alphanumericTable[payload[i]], 6)
		}
	}
}

func encodeOctet(b *bitBuffer, payload []byte, version int) {
	b.put(len(payload), ModeOctet.charCountBits(version))
	for _, by := range payload {
		b.put(int(by), 8)
	}
}
