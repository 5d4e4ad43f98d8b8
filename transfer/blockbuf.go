package transfer

import "bytes"

// BlockBuffer accumulates encoded chunks into write sized blocks; every byte fed to 'Accumulate' appears in exactly
// one emitted block, in the original order.
type BlockBuffer struct {
	capacity int64
	buffer   bytes.Buffer
}

// NewBlockBuffer creates a new block buffer which emits blocks of at least the given capacity.
func NewBlockBuffer(capacity int64) *BlockBuffer {
	return &BlockBuffer{capacity: capacity}
}

// Accumulate appends the given chunk to the buffer, returning the completed block once the buffer has reached
// capacity and <nil> otherwise. A chunk is always written whole into the block being filled, so a block may exceed
// the capacity by at most one chunk.
//
// NOTE: The returned block is only valid until the next call to 'Accumulate'/'Flush'.
func (b *BlockBuffer) Accumulate(chunk []byte) []byte {
	b.buffer.Write(chunk)

	if int64(b.buffer.Len()) < b.capacity {
		return nil
	}

	return b.emit()
}

// Flush returns whatever remains in the buffer as a final block, which may be empty; it should be called exactly once
// after the chunk sequence is exhausted.
//
// NOTE: The returned block is only valid until the next call to 'Accumulate'/'Flush'.
func (b *BlockBuffer) Flush() []byte {
	return b.emit()
}

// Buffered returns the number of bytes currently accumulated.
func (b *BlockBuffer) Buffered() int64 {
	return int64(b.buffer.Len())
}

// emit returns the accumulated bytes resetting the buffer, the backing array is reused by subsequent accumulation.
func (b *BlockBuffer) emit() []byte {
	block := b.buffer.Bytes()
	b.buffer.Reset()

	return block
}
