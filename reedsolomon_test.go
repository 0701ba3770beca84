package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// polyRemainderIsZero independently verifies that combined (data || ecc),
// read as polynomial coefficients highest-degree first, is evenly divisible
// by the degree-k generator, using a textbook LFSR division (grounded on
// grkuntzmd-qrcodegen's reedSolomonComputeRemainder, adapted to the
// exponent-form generator this package precomputes).
func polyRemainderIsZero(combined []byte, k int) bool {
	g := genPoly[k]
	reg := make([]byte, k)
	for _, b := range combined {
		factor := b ^ reg[0]
		copy(reg, reg[1:])
		reg[len(reg)-1] = 0
		if factor != 0 {
			fexp := gfInvMap[factor]
			for i, ge := range g {
				reg[i] ^= byte(gfMap[(fexp+ge)%255])
			}
		}
	}
	for _, b := range reg {
		if b != 0 {
			return false
		}
	}
	return true
}

func TestCalculateEccIsDivisibleByGenerator(t *testing.T) {
	cases := [][]byte{
		{0x10, 0x20, 0x0C, 0x56, 0x61, 0x80, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC},
		{0x01, 0x02, 0x03, 0x04, 0x05},
		{0x00},
		{},
	}
	for _, data := range cases {
		for _, k := range []int{7, 10, 13, 17, 22} {
			ecc := calculateEcc(data, k)
			assert.Len(t, ecc, k)
			combined := append(append([]byte{}, data...), ecc...)
			assert.True(t, polyRemainderIsZero(combined, k), "data=%v k=%d", data, k)
		}
	}
}

func TestBlockPartition(t *testing.T) {
	data := make([]byte, 19)
	for i := range data {
		data[i] = byte(i)
	}
	blocks := blockPartition(data, 1)
	assert.Len(t, blocks, 1)
	assert.Len(t, blocks[0], 19)

	data2 := make([]byte, 5)
	blocks2 := blockPartition(data2, 2)
	assert.Len(t, blocks2, 2)
	total := 0
	for _, b := range blocks2 {
		total += len(b)
	}
	assert.Equal(t, 5, total)
	// base=2, pivot=2-(5%2)=1: first block len 2, second len 3.
	assert.Len(t, blocks2[0], 2)
	assert.Len(t, blocks2[1], 3)
}

func TestInterleaveLength(t *testing.T) {
	data := make([]byte, 5)
	out := interleave(data, 2, 4)
	assert.Len(t, out, 5+2*4)
}
