package bzlegacy

// CRC is the running register of the legacy block checksum. It is a plain
// value: each block owns one, folds its bytes in and finalizes it once.
type CRC uint32

// CRCPolynomial is applied most-significant-bit first. This is the same number
// as the IEEE polynomial but the bit order differs, so hash/crc32 cannot be
// used as is.
const CRCPolynomial = 0x04_c1_1d_b7

var crcTable [256]uint32

func init() {
	for i := range crcTable {
		crcTable[i] = uint32(UpdateCRC(0, byte(i)))
	}
}

// InitCRC returns a fresh register.
func InitCRC() CRC {
	return 0xff_ff_ff_ff
}

// UpdateCRC folds a single byte into c.
func UpdateCRC(c CRC, b byte) CRC {
	r := uint32(c) ^ uint32(b)<<24
	for range 8 {
		bit := r&0x80_00_00_00 != 0
		r = r << 1
		if bit {
			r = r ^ CRCPolynomial
		}
	}
	return CRC(r)
}

// UpdateCRCBuffer folds p into c in order. It gives the same result as calling
// UpdateCRC for each byte.
func UpdateCRCBuffer(c CRC, p []byte) CRC {
	r := uint32(c)
	for _, b := range p {
		r = r<<8 ^ crcTable[byte(r>>24)^b]
	}
	return CRC(r)
}

// FinalizeCRC returns the checksum as stored by the legacy format.
func FinalizeCRC(c CRC) uint32 {
	return ^uint32(c)
}

// Checksum computes the legacy block checksum of p in one call.
func Checksum(p []byte) uint32 {
	return FinalizeCRC(UpdateCRCBuffer(InitCRC(), p))
}

// CombineCRC folds the checksum of one block into the checksum of the stream
// holding it. Blocks must be combined in stream order, starting from 0.
func CombineCRC(combined, block uint32) uint32 {
	return (combined<<1 | combined>>31) ^ block
}
