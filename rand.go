package bzlegacy

// RandState tracks the position of a block in the legacy randomization
// sequence. Index selects the next table entry, Counter counts down the
// current run; the byte at which Counter is 1 gets toggled.
//
// Randomized blocks are deprecated. The state only exists so archives written
// in that mode can still be read.
type RandState struct {
	Index   int
	Counter int
}

// InitRand returns the state of a block at its first byte.
func InitRand() RandState {
	return RandState{
		Index:   1,
		Counter: int(randTable[0]) - 1,
	}
}

// Mask reports whether the current byte is toggled.
func (s RandState) Mask() bool {
	return s.Counter == 1
}

// Advance moves s to the next byte. When the current run ends the counter is
// reloaded from the table instead of reaching zero.
func (s RandState) Advance() RandState {
	if s.Counter > 1 {
		s.Counter--
		return s
	}

	return s.reload()
}

// reload starts the next run. Index is reduced into the table first so a
// hand-built state cannot walk off it.
func (s RandState) reload() RandState {
	i := s.Index % RandTableSize
	if i < 0 {
		i += RandTableSize
	}
	s.Counter = int(randTable[i])
	s.Index = (i + 1) % RandTableSize
	return s
}

// Skip advances s by n bytes, jumping over whole runs at once.
func (s RandState) Skip(n int) RandState {
	for n >= s.Counter {
		n -= s.Counter
		s = s.reload()
	}
	if n > 0 {
		s.Counter -= n
	}
	return s
}

// Derandomize toggles the low bit of every masked byte of p in place and
// returns the state for the byte following p. Toggling twice restores the
// input, so the same call also randomizes.
func Derandomize(s RandState, p []byte) RandState {
	for i := range p {
		if s.Mask() {
			p[i] ^= 1
		}
		s = s.Advance()
	}
	return s
}
