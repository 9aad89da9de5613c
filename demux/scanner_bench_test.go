package demux

import (
	"bytes"
	"context"
	"testing"
)

func BenchmarkParseStream(b *testing.B) {
	// One second of 128 kbps audio: 39 frames of 417/418 bytes.
	hdr := []byte{0xFF, 0xFB, 0x90, 0xC0}
	fr := make([]byte, 417)
	copy(fr, hdr)

	var data []byte
	for i := 0; i < 39; i++ {
		data = append(data, fr...)
	}

	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if _, err := Parse(context.Background(), bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseStreamDirty(b *testing.B) {
	// Same stream with garbage runs between frames, forcing per-byte
	// resynchronization.
	hdr := []byte{0xFF, 0xFB, 0x90, 0xC0}
	fr := make([]byte, 417)
	copy(fr, hdr)
	noise := bytes.Repeat([]byte{0x13, 0x37}, 32)

	var data []byte
	for i := 0; i < 39; i++ {
		data = append(data, noise...)
		data = append(data, fr...)
	}

	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if _, err := Parse(context.Background(), bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
