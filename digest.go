package bzlegacy

import "hash"

// Size of a legacy checksum in bytes.
const Size = 4

type digest struct {
	crc CRC
}

// New creates a hash.Hash32 computing the legacy block checksum. Its Sum
// method lays the value out in big-endian byte order, the way the legacy
// container stores it.
func New() hash.Hash32 {
	return &digest{crc: InitCRC()}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = InitCRC() }

func (d *digest) Write(p []byte) (int, error) {
	d.crc = UpdateCRCBuffer(d.crc, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return FinalizeCRC(d.crc) }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
