/*
Package bzlegacy implements two low-level primitives of the legacy bzip2 block
format: the block checksum and the randomization mask of deprecated
randomized blocks.

The checksum is CRC-32 with polynomial 0x04c11db7 processed most significant
bit first, initialized to all ones and complemented at the end. It is not the
value returned by hash/crc32.

	c := bzlegacy.InitCRC()
	c = bzlegacy.UpdateCRCBuffer(c, block)
	sum := bzlegacy.FinalizeCRC(c)

The randomizer answers, for every byte of a block, whether that byte was
toggled by an old encoder:

	s := bzlegacy.InitRand()
	for i := range block {
		if s.Mask() {
			block[i] ^= 1
		}
		s = s.Advance()
	}

States are plain values owned by one block; nothing is shared between blocks.
*/
package bzlegacy
