package wav

import (
	"fmt"

	"github.com/go-audio/riff"
)

// CuePoint is a sample-accurate marker into the data chunk.
type CuePoint struct {
	ID       uint32
	Position uint32
	// Target is the ID of the chunk the point refers to; only "data" is
	// supported.
	Target       [4]byte
	ChunkStart   uint32
	BlockStart   uint32
	SampleOffset uint32
}

// CueChunk stores cue points in file order. Count is the raw value read off
// the wire and can disagree with len(Points).
type CueChunk struct {
	Size   uint32
	Count  int64
	Points []CuePoint
}

func (cc *CueChunk) Clone() *CueChunk {
	if cc == nil {
		return nil
	}

	out := *cc
	out.Points = append([]CuePoint(nil), cc.Points...)

	return &out
}

// decodeCueChunk reads the wire count and then exactly that many fixed
// 24-byte cue records. The count is not range checked against the declared
// chunk size; a hostile count runs into the end of the stream and fails as a
// malformed chunk. A repeated cue chunk appends to the existing table.
func (d *decoder) decodeCueChunk() error {
	size, err := d.c.readUint32()
	if err != nil {
		return fmt.Errorf("%w: failed to read cue chunk size", ErrMalformedChunk)
	}

	count, err := d.c.readUint32()
	if err != nil {
		return fmt.Errorf("%w: failed to read cue point count", ErrMalformedChunk)
	}

	if d.cue == nil {
		d.cue = &CueChunk{}
	}

	d.cue.Size = size
	d.cue.Count = int64(count)

	for i := int64(0); i < d.cue.Count; i++ {
		point, err := d.decodeCuePoint()
		if err != nil {
			return err
		}

		d.cue.Points = append(d.cue.Points, point)
	}

	return nil
}

func (d *decoder) decodeCuePoint() (CuePoint, error) {
	var (
		point CuePoint
		err   error
	)

	if point.ID, err = d.c.readUint32(); err != nil {
		return point, fmt.Errorf("%w: failed to read cue point identifier", ErrMalformedChunk)
	}

	if point.Position, err = d.c.readUint32(); err != nil {
		return point, fmt.Errorf("%w: failed to read cue point position", ErrMalformedChunk)
	}

	if point.Target, err = d.c.readID(); err != nil {
		return point, fmt.Errorf("%w: failed to read cue point target", ErrMalformedChunk)
	}

	// Cue points referencing anything but the data chunk are not supported
	// and fail the whole parse, not just this record.
	if point.Target != riff.DataFormatID {
		return point, fmt.Errorf("%w: %q", ErrUnsupportedCueTarget, point.Target)
	}

	if point.ChunkStart, err = d.c.readUint32(); err != nil {
		return point, fmt.Errorf("%w: failed to read cue point chunk start", ErrMalformedChunk)
	}

	if point.BlockStart, err = d.c.readUint32(); err != nil {
		return point, fmt.Errorf("%w: failed to read cue point block start", ErrMalformedChunk)
	}

	if point.SampleOffset, err = d.c.readUint32(); err != nil {
		return point, fmt.Errorf("%w: failed to read cue point sample offset", ErrMalformedChunk)
	}

	return point, nil
}
