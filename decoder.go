package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
)

// decoder accumulates chunk records during a single walk over the container.
// On success the accumulated state is frozen into a File; on failure it is
// discarded as a whole.
type decoder struct {
	c *cursor

	format  *FmtChunk
	fmtSeen bool
	data    *DataChunk
	fact    *FactChunk
	cue     *CueChunk
}

// Open reads and parses the wav file at path. The file is closed before Open
// returns, regardless of outcome.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a RIFF/WAVE container from r. The reader is consumed up to
// the end of the chunk sequence; each call produces a fresh, independent File.
func Decode(r io.Reader) (*File, error) {
	d := &decoder{
		c: &cursor{r: r},
		// The starting descriptor is PCM so a data chunk decoded ahead of any
		// fmt chunk is still accepted.
		format: &FmtChunk{AudioFormat: wavFormatPCM},
	}

	if err := d.readHeader(); err != nil {
		return nil, err
	}

	if err := d.walk(); err != nil {
		return nil, err
	}

	if !d.fmtSeen {
		return nil, ErrFmtChunkNotFound
	}

	return &File{
		format: d.format,
		data:   d.data,
		fact:   d.fact,
		cue:    d.cue,
	}, nil
}

// readHeader validates the 12-byte RIFF/WAVE container header. The RIFF size
// field is read but deliberately not checked against the stream length;
// truncation is caught per chunk.
func (d *decoder) readHeader() error {
	var hdr [12]byte

	if err := d.c.readFull(hdr[:]); err != nil {
		return fmt.Errorf("%w: container header too short", ErrInvalidHeader)
	}

	if !bytes.Equal(hdr[0:4], riff.RiffID[:]) {
		return fmt.Errorf("%w: expected RIFF, got %q", ErrInvalidHeader, hdr[0:4])
	}

	if !bytes.Equal(hdr[8:12], riff.WavFormatID[:]) {
		return fmt.Errorf("%w: expected WAVE, got %q", ErrInvalidHeader, hdr[8:12])
	}

	return nil
}

// walk iterates the chunk sequence until the end of the stream. A short tag
// read, whether zero or 1-3 bytes, ends the loop; everything else is routed
// through the chunk table or the generic skip.
func (d *decoder) walk() error {
	for {
		id, err := d.c.readID()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}

			return fmt.Errorf("failed to read chunk ID: %w", err)
		}

		decode, ok := chunkTable[id]
		if !ok {
			decode = (*decoder).skipChunk
		}

		if err := decode(d); err != nil {
			return err
		}
	}
}
