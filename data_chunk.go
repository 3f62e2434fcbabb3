package wav

import (
	"errors"
	"fmt"
	"io"
)

// DataChunk stores the raw sample bytes exactly as laid out in the file,
// together with the format code and bit depth in effect when the chunk was
// decoded. The bytes are not deinterleaved or converted.
type DataChunk struct {
	// Size is the declared payload size in bytes, excluding any pad byte.
	Size uint32
	// Offset is the byte offset of the payload from the start of the stream.
	Offset int64
	// AudioFormat and BitsPerSample are copied from the format descriptor
	// current at decode time, which is how the raw bytes should be
	// interpreted as samples.
	AudioFormat   uint16
	BitsPerSample uint16
	Data          []byte
}

func (dc *DataChunk) Clone() *DataChunk {
	if dc == nil {
		return nil
	}

	out := *dc
	if dc.Data != nil {
		out.Data = append([]byte(nil), dc.Data...)
	}

	return &out
}

// decodeDataChunk reads the sample payload. Only PCM and IEEE float format
// codes are accepted; the check uses whatever descriptor is current, so a data
// chunk ahead of the fmt chunk is validated against the PCM default.
func (d *decoder) decodeDataChunk() error {
	size, err := d.c.readUint32()
	if err != nil {
		return fmt.Errorf("%w: failed to read data chunk size", ErrMalformedChunk)
	}

	if d.format.AudioFormat != wavFormatPCM && d.format.AudioFormat != wavFormatIEEEFloat {
		return fmt.Errorf("%w: format tag %d", ErrUnsupportedAudioFormat, d.format.AudioFormat)
	}

	chunk := &DataChunk{
		Size:          size,
		Offset:        d.c.offset(),
		AudioFormat:   d.format.AudioFormat,
		BitsPerSample: d.format.BitsPerSample,
		Data:          make([]byte, size),
	}

	if size > 0 {
		if err := d.c.readFull(chunk.Data); err != nil {
			return fmt.Errorf("%w: expected %d bytes", ErrTruncatedData, size)
		}
	}

	// An odd payload is followed by a single pad byte that keeps the next
	// chunk word aligned. It must be consumed even when no chunk follows.
	if size%2 == 1 {
		if err := d.c.skip(1); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to skip data pad byte: %w", err)
		}
	}

	d.data = chunk

	return nil
}
