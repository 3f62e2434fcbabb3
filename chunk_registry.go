package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// chunkTable maps the 4 raw tag bytes of each decoded chunk to its decoder.
// Tags absent from the table, including the recognized-but-inert set (JUNK,
// LIST, INFO, smpl, inst, bext, iXML) and all vendor tags, fall through to
// skipChunk.
var chunkTable = map[[4]byte]func(*decoder) error{
	riff.FmtID:        (*decoder).decodeFmtChunk,
	riff.DataFormatID: (*decoder).decodeDataChunk,
	CIDFact:           (*decoder).decodeFactChunk,
	CIDCue:            (*decoder).decodeCueChunk,
}

// skipChunk consumes a chunk without interpreting it: declared size, payload,
// and the pad byte that follows an odd payload. Running out of payload bytes
// ends the stream quietly; a missing size field is an error.
func (d *decoder) skipChunk() error {
	size, err := d.c.readUint32()
	if err != nil {
		return fmt.Errorf("%w: failed to read chunk size", ErrMalformedChunk)
	}

	n := int64(size)
	if size%2 == 1 {
		n++
	}

	if err := d.c.skip(n); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to skip chunk payload: %w", err)
	}

	return nil
}
