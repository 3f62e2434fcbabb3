package wav

import (
	"encoding/binary"
	"io"
)

// cursor is a forward-only reader over the container byte stream. It keeps a
// running offset so chunk alignment can be checked without seeking.
type cursor struct {
	r   io.Reader
	off int64
}

// readFull reads exactly len(buf) bytes. A short read is reported as io.EOF
// (nothing read) or io.ErrUnexpectedEOF (partial read); the offset advances
// by the bytes actually consumed.
func (c *cursor) readFull(buf []byte) error {
	n, err := io.ReadFull(c.r, buf)
	c.off += int64(n)

	return err
}

func (c *cursor) readUint32() (uint32, error) {
	var buf [4]byte
	if err := c.readFull(buf[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(buf[:]), nil
}

// readID reads a 4-byte chunk identifier. IDs are raw bytes compared exactly,
// never case folded.
func (c *cursor) readID() ([4]byte, error) {
	var id [4]byte
	err := c.readFull(id[:])

	return id, err
}

// skip advances the cursor by n bytes. Skipping past the end of the stream
// consumes what was left and reports io.EOF.
func (c *cursor) skip(n int64) error {
	if n <= 0 {
		return nil
	}

	written, err := io.CopyN(io.Discard, c.r, n)
	c.off += written

	return err
}

// offset returns the number of bytes consumed so far.
func (c *cursor) offset() int64 {
	return c.off
}
