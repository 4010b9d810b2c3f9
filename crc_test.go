package bzlegacy

import (
	"bytes"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, " +
	"sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. " +
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi " +
	"ut aliquip ex ea commodo consequat. Duis aute irure dolor in reprehenderit " +
	"in voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur " +
	"sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt " +
	"mollit anim id est laborum."

var checksumVectors = []struct {
	name string
	in   string
	want uint32
}{
	{"empty", "", 0x00000000},
	{"space", " ", 0x29d4f6ab},
	{"hello", "hello world", 0x44f71378},
	{"lorem", lorem, 0xd31de6c9},
	{"check", "123456789", 0xfc891918},
}

func crcByteWise(p []byte) uint32 {
	c := InitCRC()
	for _, b := range p {
		c = UpdateCRC(c, b)
	}
	return FinalizeCRC(c)
}

func TestChecksumVectors(t *testing.T) {
	require.Len(t, lorem, 445)

	for _, tc := range checksumVectors {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equalf(t, tc.want, crcByteWise([]byte(tc.in)), "byte-wise: got %.8x", crcByteWise([]byte(tc.in)))
			assert.Equalf(t, tc.want, Checksum([]byte(tc.in)), "buffer: got %.8x", Checksum([]byte(tc.in)))
		})
	}
}

func TestInitAndFinalize(t *testing.T) {
	assert.Equal(t, CRC(0xffffffff), InitCRC())
	assert.Equal(t, uint32(0), FinalizeCRC(InitCRC()))
	assert.Equal(t, uint32(0xffffffff), FinalizeCRC(0))
}

func TestUpdateBufferMatchesByteWise(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i*131 + i>>3)
	}

	for _, n := range []int{0, 1, 2, 7, 255, 256, 1000, len(data)} {
		assert.Equal(t, crcByteWise(data[:n]), Checksum(data[:n]), "n=%d", n)
	}
}

func TestUpdateBufferIncremental(t *testing.T) {
	data := []byte(lorem)
	want := Checksum(data)

	for _, split := range []int{0, 1, 57, 222, len(data) - 1, len(data)} {
		c := UpdateCRCBuffer(InitCRC(), data[:split])
		c = UpdateCRCBuffer(c, data[split:])
		assert.Equal(t, want, FinalizeCRC(c), "split=%d", split)
	}
}

func TestChecksumOrderSensitive(t *testing.T) {
	assert.NotEqual(t, Checksum([]byte("ab")), Checksum([]byte("ba")))
	assert.Equal(t, uint32(0xe993fdcd), Checksum([]byte("ab")))
	assert.Equal(t, uint32(0x963b84c7), Checksum([]byte("ba")))
}

func TestChecksumDiffersFromIEEE(t *testing.T) {
	// Same polynomial, opposite bit order.
	in := []byte("hello world")
	assert.NotEqual(t, crc32.ChecksumIEEE(in), Checksum(in))
}

func TestTableEntries(t *testing.T) {
	assert.Equal(t, uint32(0), crcTable[0])
	assert.Equal(t, uint32(CRCPolynomial), crcTable[1])
	assert.Equal(t, uint32(0x04c11db7<<1), crcTable[2])
	assert.Equal(t, uint32(0xb1f740b4), crcTable[255])
}

func TestCombineCRC(t *testing.T) {
	blocks := [][]byte{[]byte("hello world"), []byte(" "), []byte(lorem)}

	var combined uint32
	for _, b := range blocks {
		combined = CombineCRC(combined, Checksum(b))
	}

	want := uint32(0x44f71378)
	want = (want<<1 | want>>31) ^ 0x29d4f6ab
	want = (want<<1 | want>>31) ^ 0xd31de6c9
	assert.Equal(t, want, combined)

	assert.Equal(t, uint32(0x44f71378), CombineCRC(0, 0x44f71378))
	assert.Equal(t, uint32(1), CombineCRC(0x80000000, 0))
	assert.NotEqual(t,
		CombineCRC(CombineCRC(0, 0x29d4f6ab), 0x44f71378),
		CombineCRC(CombineCRC(0, 0x44f71378), 0x29d4f6ab),
	)
}

func TestChecksumLargeRepeated(t *testing.T) {
	data := bytes.Repeat([]byte(lorem), 64)
	assert.Equal(t, crcByteWise(data), Checksum(data))
}
