package wav

import "fmt"

// FactChunk stores the fact chunk sample count, mainly meaningful for non-PCM
// content.
type FactChunk struct {
	// Size is the declared chunk size. Content beyond the 4-byte sample count
	// is not consumed.
	Size uint32
	// SampleCount is the number of samples per channel.
	SampleCount uint32
}

func (fc *FactChunk) Clone() *FactChunk {
	if fc == nil {
		return nil
	}

	out := *fc

	return &out
}

func (d *decoder) decodeFactChunk() error {
	size, err := d.c.readUint32()
	if err != nil {
		return fmt.Errorf("%w: failed to read fact chunk size", ErrMalformedChunk)
	}

	count, err := d.c.readUint32()
	if err != nil {
		return fmt.Errorf("%w: failed to read fact sample count", ErrMalformedChunk)
	}

	d.fact = &FactChunk{Size: size, SampleCount: count}

	return nil
}
