package arena

// BytesInUse returns the number of bytes between the start of the byte
// buffer and its cursor, including gaps left by non-topmost shrinks.
func (a *Arena) BytesInUse() int {
	return a.bytes.top
}

// WordsInUse returns the number of words between the start of the word
// buffer and its cursor.
func (a *Arena) WordsInUse() int {
	return a.words.top
}

// BytesCapacity returns the size of the byte buffer.
func (a *Arena) BytesCapacity() int {
	return len(a.bytes.buf)
}

// WordsCapacity returns the size of the word buffer.
func (a *Arena) WordsCapacity() int {
	return len(a.words.buf)
}

// Utilization returns the ratio of memory in use to total capacity (0.0 to 1.0),
// counting a word as four bytes. Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.BytesCapacity() + 4*a.WordsCapacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.BytesInUse()+4*a.WordsInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		BytesInUse:    a.BytesInUse(),
		WordsInUse:    a.WordsInUse(),
		BytesCapacity: a.BytesCapacity(),
		WordsCapacity: a.WordsCapacity(),
		PeakBytes:     a.bytes.peak,
		PeakWords:     a.words.peak,
		Allocated:     a.Allocated(),
		Free:          a.Free(),
		Depth:         a.Depth(),
		Utilization:   a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	BytesInUse    int     // Bytes below the byte cursor
	WordsInUse    int     // Words below the word cursor
	BytesCapacity int     // Byte buffer size
	WordsCapacity int     // Word buffer size
	PeakBytes     int     // High-water mark of BytesInUse
	PeakWords     int     // High-water mark of WordsInUse
	Allocated     int     // Live arrays
	Free          int     // Retired handles kept for reuse
	Depth         int     // Open scopes
	Utilization   float64 // Ratio of used to total capacity (0.0-1.0)
}
