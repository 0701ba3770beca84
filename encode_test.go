package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDataFillsExactlyToCapacity(t *testing.T) {
	capacity := dataCodewords(1, LevelM)
	out := encodeData([]byte("01234567"), ModeNumeric, 1, capacity)
	assert.Len(t, out, capacity)
}

func TestEncodeDataPadsWithAlternatingBytes(t *testing.T) {
	capacity := dataCodewords(1, LevelL)
	out := encodeData([]byte{}, ModeNumeric, 1, capacity)
	require.Len(t, out, capacity)

	// mode(4)+length(10)+terminator(4)=18 bits, byte-aligned up to 24 bits
	// (3 bytes), then pad alternates 0xEC, 0x11.
	tailStart := 3
	toggle := byte(0xEC)
	for i := tailStart; i < len(out); i++ {
		assert.Equal(t, toggle, out[i], "pad byte at index %d", i)
		if toggle == 0xEC {
			toggle = 0x11
		} else {
			toggle = 0xEC
		}
	}
}

func TestEncodeDataExactFitDoesNotOverflow(t *testing.T) {
	capacity := dataCodewords(1, LevelL) // 19 bytes = 152 bits
	// Octet payload using the entire capacity: 4 (mode) + 8 (len) + 8*n <= 152.
	n := (152 - 4 - 8) / 8
	payload := make([]byte, n)
	out := encodeData(payload, ModeOctet, 1, capacity)
	assert.Len(t, out, capacity)
}

func TestBitBufferPacksMSBFirst(t *testing.T) {
	b := &bitBuffer{}
	b.put(0b101, 3)
	assert.Equal(t, []byte{0b10100000}, b.bytes())
}

func TestAlphanumericPairPacking(t *testing.T) {
	b := &bitBuffer{}
	encodeAlphanumeric(b, []byte("AC-42"), 1)
	// Length indicator for version 1 alphanumeric is 9 bits = 5.
	// "AC" -> 10*45+12 = 462; "-4" -> 41*45+4=1849; "2" trailing -> 2.
	// 9+11+11+6 = 37 bits: 000000101 00111001110 11100111001 000010.
	assert.Equal(t, 37, b.len())
	assert.Equal(t, []byte{0x02, 0x9C, 0xEE, 0x72, 0x10}, b.bytes())
}
