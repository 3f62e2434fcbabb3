package wav

import "errors"

var (
	// CIDFact is the chunk ID for the fact chunk.
	CIDFact = [4]byte{'f', 'a', 'c', 't'}
	// CIDCue is the chunk ID for the cue chunk.
	CIDCue = [4]byte{'c', 'u', 'e', 0x20}
	// CIDJunk is the chunk ID for a JUNK padding chunk.
	CIDJunk = [4]byte{'J', 'U', 'N', 'K'}
	// CIDList is the chunk ID for a LIST chunk.
	CIDList = [4]byte{'L', 'I', 'S', 'T'}
	// CIDInfo is the chunk ID for an INFO chunk.
	CIDInfo = [4]byte{'I', 'N', 'F', 'O'}
	// CIDSmpl is the chunk ID for a smpl chunk.
	CIDSmpl = [4]byte{'s', 'm', 'p', 'l'}
	// CIDInst is the chunk ID for an inst chunk.
	CIDInst = [4]byte{'i', 'n', 's', 't'}
	// CIDBext is the chunk ID for the broadcast extension chunk.
	CIDBext = [4]byte{'b', 'e', 'x', 't'}
	// CIDIXML is the chunk ID for an iXML chunk.
	CIDIXML = [4]byte{'i', 'X', 'M', 'L'}

	// ErrInvalidHeader is returned when the 12-byte RIFF/WAVE container
	// header is missing or malformed.
	ErrInvalidHeader = errors.New("invalid RIFF/WAVE header")
	// ErrMalformedChunk is returned when a mandatory fixed-size field of a
	// known chunk can't be read in full.
	ErrMalformedChunk = errors.New("malformed chunk")
	// ErrUnsupportedAudioFormat is returned when the data chunk is seen with
	// a format code other than PCM or IEEE float.
	ErrUnsupportedAudioFormat = errors.New("unsupported audio format")
	// ErrTruncatedData is returned when the data chunk declares more bytes
	// than the source holds.
	ErrTruncatedData = errors.New("truncated data chunk")
	// ErrUnsupportedCueTarget is returned when a cue point references a chunk
	// other than the data chunk.
	ErrUnsupportedCueTarget = errors.New("cue point targets an unsupported chunk")
	// ErrFmtChunkNotFound indicates an audio file without a fmt chunk.
	ErrFmtChunkNotFound = errors.New("fmt chunk not found in audio file")
)

const (
	wavFormatPCM       = 1
	wavFormatIEEEFloat = 3
)
