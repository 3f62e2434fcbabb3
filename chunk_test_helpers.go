package wav

import (
	"bytes"
	"encoding/binary"
	"testing"
)

type rawTestChunk struct {
	id      string
	payload []byte
}

func buildWav(t *testing.T, chunks ...rawTestChunk) []byte {
	t.Helper()

	var b bytes.Buffer
	b.WriteString("RIFF")

	err := binary.Write(&b, binary.LittleEndian, uint32(0))
	if err != nil {
		t.Fatalf("write riff size placeholder: %v", err)
	}

	b.WriteString("WAVE")

	for _, ch := range chunks {
		writeTestChunk(t, &b, ch.id, ch.payload)
	}

	out := b.Bytes()
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))

	return out
}

func writeTestChunk(t *testing.T, b *bytes.Buffer, id string, payload []byte) {
	t.Helper()

	if len(id) != 4 {
		t.Fatalf("chunk id must be 4 bytes, got %q", id)
	}

	b.WriteString(id)

	err := binary.Write(b, binary.LittleEndian, uint32(len(payload)))
	if err != nil {
		t.Fatalf("write chunk size for %q: %v", id, err)
	}

	if _, err := b.Write(payload); err != nil {
		t.Fatalf("write chunk payload for %q: %v", id, err)
	}

	if len(payload)%2 == 1 {
		err := b.WriteByte(0)
		if err != nil {
			t.Fatalf("write chunk pad for %q: %v", id, err)
		}
	}
}

func fmtPayload(format, channels uint16, rate, byteRate uint32, blockAlign, bits uint16) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint16(buf[0:2], format)
	binary.LittleEndian.PutUint16(buf[2:4], channels)
	binary.LittleEndian.PutUint32(buf[4:8], rate)
	binary.LittleEndian.PutUint32(buf[8:12], byteRate)
	binary.LittleEndian.PutUint16(buf[12:14], blockAlign)
	binary.LittleEndian.PutUint16(buf[14:16], bits)

	return buf
}

// defaultFmtPayload is a minimal PCM mono 8-bit 44100 Hz descriptor.
func defaultFmtPayload() []byte {
	return fmtPayload(wavFormatPCM, 1, 44100, 44100, 1, 8)
}

func cuePointBytes(t *testing.T, id, pos uint32, target string, chunkStart, blockStart, sampleOffset uint32) []byte {
	t.Helper()

	if len(target) != 4 {
		t.Fatalf("cue target must be 4 bytes, got %q", target)
	}

	buf := make([]byte, 24)
	binary.LittleEndian.PutUint32(buf[0:4], id)
	binary.LittleEndian.PutUint32(buf[4:8], pos)
	copy(buf[8:12], target)
	binary.LittleEndian.PutUint32(buf[12:16], chunkStart)
	binary.LittleEndian.PutUint32(buf[16:20], blockStart)
	binary.LittleEndian.PutUint32(buf[20:24], sampleOffset)

	return buf
}

func cuePayload(count uint32, points ...[]byte) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, count)

	for _, p := range points {
		buf = append(buf, p...)
	}

	return buf
}
