package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// FmtChunk stores the parsed WAV fmt chunk fields.
type FmtChunk struct {
	AudioFormat    uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

func (f *FmtChunk) Clone() *FmtChunk {
	if f == nil {
		return nil
	}

	out := *f

	return &out
}

const fmtChunkBaseSize = 16

// decodeFmtChunk decodes the fixed 16-byte descriptor and skips any format
// extension bytes without interpreting them. A repeated fmt chunk overwrites
// the previous descriptor.
func (d *decoder) decodeFmtChunk() error {
	size, err := d.c.readUint32()
	if err != nil {
		return fmt.Errorf("%w: failed to read fmt chunk size", ErrMalformedChunk)
	}

	var buf [fmtChunkBaseSize]byte
	if err := d.c.readFull(buf[:]); err != nil {
		return fmt.Errorf("%w: fmt chunk too short", ErrMalformedChunk)
	}

	d.format = &FmtChunk{
		AudioFormat:    binary.LittleEndian.Uint16(buf[0:2]),
		NumChannels:    binary.LittleEndian.Uint16(buf[2:4]),
		SampleRate:     binary.LittleEndian.Uint32(buf[4:8]),
		AvgBytesPerSec: binary.LittleEndian.Uint32(buf[8:12]),
		BlockAlign:     binary.LittleEndian.Uint16(buf[12:14]),
		BitsPerSample:  binary.LittleEndian.Uint16(buf[14:16]),
	}
	d.fmtSeen = true

	if size > fmtChunkBaseSize {
		if err := d.c.skip(int64(size) - fmtChunkBaseSize); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to skip fmt extension: %w", err)
		}
	}

	return nil
}
