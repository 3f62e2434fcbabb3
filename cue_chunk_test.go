package wav

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeCueChunk(t *testing.T) {
	points := cuePayload(2,
		cuePointBytes(t, 1, 0, "data", 0, 0, 4410),
		cuePointBytes(t, 2, 1, "data", 0, 0, 88200),
	)

	input := buildWav(t,
		rawTestChunk{id: "fmt ", payload: defaultFmtPayload()},
		rawTestChunk{id: "data", payload: []byte{1, 2, 3, 4}},
		rawTestChunk{id: "cue ", payload: points},
	)

	f, err := Decode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	cue := f.CueChunk()
	if cue == nil {
		t.Fatal("expected a cue chunk")
	}

	if cue.Count != 2 || len(cue.Points) != 2 {
		t.Fatalf("expected 2 cue points, got count=%d len=%d", cue.Count, len(cue.Points))
	}

	first := cue.Points[0]
	if first.ID != 1 || first.SampleOffset != 4410 {
		t.Fatalf("unexpected first cue point: %+v", first)
	}

	if first.Target != [4]byte{'d', 'a', 't', 'a'} {
		t.Fatalf("unexpected cue target: %q", first.Target)
	}

	if cue.Points[1].SampleOffset != 88200 {
		t.Fatalf("unexpected second cue point: %+v", cue.Points[1])
	}
}

func TestCuePointNonDataTargetFailsParse(t *testing.T) {
	points := cuePayload(1, cuePointBytes(t, 1, 0, "fmt ", 0, 0, 0))

	input := buildWav(t,
		rawTestChunk{id: "fmt ", payload: defaultFmtPayload()},
		rawTestChunk{id: "data", payload: []byte{1, 2}},
		rawTestChunk{id: "cue ", payload: points},
	)

	_, err := Decode(bytes.NewReader(input))
	if !errors.Is(err, ErrUnsupportedCueTarget) {
		t.Fatalf("expected ErrUnsupportedCueTarget, got %v", err)
	}
}

func TestCueCountBeyondStreamFailsAsMalformed(t *testing.T) {
	// Count claims 5 points but only one record follows. The count is not
	// bounds checked against the declared size, so the loop runs into the end
	// of the stream.
	points := cuePayload(5, cuePointBytes(t, 1, 0, "data", 0, 0, 0))

	input := buildWav(t,
		rawTestChunk{id: "fmt ", payload: defaultFmtPayload()},
		rawTestChunk{id: "cue ", payload: points},
	)

	_, err := Decode(bytes.NewReader(input))
	if !errors.Is(err, ErrMalformedChunk) {
		t.Fatalf("expected ErrMalformedChunk, got %v", err)
	}
}

func TestRepeatedCueChunkAppends(t *testing.T) {
	first := cuePayload(1, cuePointBytes(t, 1, 0, "data", 0, 0, 100))
	second := cuePayload(1, cuePointBytes(t, 2, 1, "data", 0, 0, 200))

	input := buildWav(t,
		rawTestChunk{id: "fmt ", payload: defaultFmtPayload()},
		rawTestChunk{id: "cue ", payload: first},
		rawTestChunk{id: "cue ", payload: second},
	)

	f, err := Decode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	cue := f.CueChunk()
	if len(cue.Points) != 2 {
		t.Fatalf("expected accumulated cue points, got %d", len(cue.Points))
	}

	// Count mirrors the last wire value, so it can disagree with len(Points).
	if cue.Count != 1 {
		t.Fatalf("expected count 1 from the last cue chunk, got %d", cue.Count)
	}
}

func TestCueChunkTruncatedRecordFailsParse(t *testing.T) {
	payload := cuePayload(1, cuePointBytes(t, 1, 0, "data", 0, 0, 0)[:12])

	input := buildWav(t,
		rawTestChunk{id: "fmt ", payload: defaultFmtPayload()},
		rawTestChunk{id: "cue ", payload: payload},
	)

	_, err := Decode(bytes.NewReader(input))
	if !errors.Is(err, ErrMalformedChunk) {
		t.Fatalf("expected ErrMalformedChunk, got %v", err)
	}
}
