package wav

import "github.com/go-audio/audio"

// File is the immutable result of one successful parse pass. Accessors return
// copies of the underlying records, so a File can be shared freely.
type File struct {
	format *FmtChunk
	data   *DataChunk
	fact   *FactChunk
	cue    *CueChunk
}

// NumChannels returns the channel count from the fmt chunk.
func (f *File) NumChannels() uint16 {
	if f == nil || f.format == nil {
		return 0
	}

	return f.format.NumChannels
}

// SampleRate returns the sample rate in Hz from the fmt chunk.
func (f *File) SampleRate() uint32 {
	if f == nil || f.format == nil {
		return 0
	}

	return f.format.SampleRate
}

// BitsPerSample returns the bit depth encoding of each sample.
func (f *File) BitsPerSample() uint16 {
	if f == nil || f.format == nil {
		return 0
	}

	return f.format.BitsPerSample
}

// AudioFormat returns the audio format code (1 = PCM, 3 = IEEE float).
func (f *File) AudioFormat() uint16 {
	if f == nil || f.format == nil {
		return 0
	}

	return f.format.AudioFormat
}

// Format returns the decoded audio format description.
func (f *File) Format() *audio.Format {
	if f == nil || f.format == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(f.format.NumChannels),
		SampleRate:  int(f.format.SampleRate),
	}
}

// FormatChunk returns a copy of the parsed fmt chunk.
func (f *File) FormatChunk() *FmtChunk {
	if f == nil {
		return nil
	}

	return f.format.Clone()
}

// DataChunk returns a copy of the decoded data chunk, if present.
func (f *File) DataChunk() *DataChunk {
	if f == nil {
		return nil
	}

	return f.data.Clone()
}

// FactChunk returns a copy of the decoded fact chunk, if present.
func (f *File) FactChunk() *FactChunk {
	if f == nil {
		return nil
	}

	return f.fact.Clone()
}

// CueChunk returns a copy of the decoded cue chunk, if present.
func (f *File) CueChunk() *CueChunk {
	if f == nil {
		return nil
	}

	return f.cue.Clone()
}
