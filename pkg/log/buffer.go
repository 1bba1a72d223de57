package log

import (
	"fmt"
	"io"
	"sync"
)

// DefaultBufferSize is used by [NewBuffer] for a non-positive size.
const DefaultBufferSize = 100

// Buffer is an [io.Writer] that keeps the last few writes in memory. The TUI
// logs into a Buffer while it owns the terminal, and flushes it on exit.
//
// Each call to Write is one entry; handlers write one record per call.
type Buffer struct {
	entries [][]byte
	next    int
	dropped int
	mu      sync.Mutex
}

// NewBuffer creates a [Buffer] holding up to size entries.
func NewBuffer(size int) *Buffer {
	if size <= 0 {
		size = DefaultBufferSize
	}

	return &Buffer{entries: make([][]byte, 0, size)}
}

// Write stores a copy of p, dropping the oldest entry when the buffer is full.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	entry := append([]byte(nil), p...)

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) < cap(b.entries) {
		b.entries = append(b.entries, entry)

		return len(p), nil
	}

	b.entries[b.next] = entry
	b.next = (b.next + 1) % len(b.entries)
	b.dropped++

	return len(p), nil
}

// Entries returns copies of the stored entries, oldest first.
func (b *Buffer) Entries() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([][]byte, 0, len(b.entries))
	for i := range b.entries {
		e := b.entries[(b.next+i)%len(b.entries)]
		out = append(out, append([]byte(nil), e...))
	}

	return out
}

// Len returns the number of stored entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.entries)
}

// Dropped returns the number of entries that were overwritten.
func (b *Buffer) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.dropped
}

// Reset removes all entries.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = b.entries[:0]
	b.next = 0
	b.dropped = 0
}

// WriteTo writes the stored entries to w, oldest first.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, e := range b.Entries() {
		n, err := w.Write(e)
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("write log entry: %w", err)
		}
	}

	return total, nil
}
