package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestDecodeFactChunk(t *testing.T) {
	fact := make([]byte, 4)
	binary.LittleEndian.PutUint32(fact, 12345)

	input := buildWav(t,
		rawTestChunk{id: "fmt ", payload: defaultFmtPayload()},
		rawTestChunk{id: "fact", payload: fact},
		rawTestChunk{id: "data", payload: []byte{1, 2}},
	)

	f, err := Decode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	got := f.FactChunk()
	if got == nil {
		t.Fatal("expected a fact chunk")
	}

	if got.SampleCount != 12345 {
		t.Fatalf("expected sample count 12345, got %d", got.SampleCount)
	}

	if got.Size != 4 {
		t.Fatalf("expected declared size 4, got %d", got.Size)
	}
}

func TestFactChunkShortSampleCount(t *testing.T) {
	input := buildWav(t, rawTestChunk{id: "fmt ", payload: defaultFmtPayload()})

	input = append(input, "fact"...)
	input = binary.LittleEndian.AppendUint32(input, 4)
	input = append(input, 0x01, 0x02)

	_, err := Decode(bytes.NewReader(input))
	if !errors.Is(err, ErrMalformedChunk) {
		t.Fatalf("expected ErrMalformedChunk, got %v", err)
	}
}

func TestFactChunkRemainderIsNotConsumed(t *testing.T) {
	// A fact chunk declaring 12 bytes still only has its first 4 bytes read.
	// The remainder stays in the stream, which is observable as the walker
	// picking the leftover bytes up as the next tag. Here the remainder
	// happens to spell a well-formed empty chunk, so the parse survives.
	payload := make([]byte, 12)
	binary.LittleEndian.PutUint32(payload[0:4], 7)
	copy(payload[4:8], "xtra")
	binary.LittleEndian.PutUint32(payload[8:12], 0)

	input := buildWav(t,
		rawTestChunk{id: "fmt ", payload: defaultFmtPayload()},
		rawTestChunk{id: "fact", payload: payload},
	)

	f, err := Decode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if f.FactChunk().SampleCount != 7 {
		t.Fatalf("expected sample count 7, got %d", f.FactChunk().SampleCount)
	}
}
