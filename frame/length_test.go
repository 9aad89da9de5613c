package frame

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, buf []byte) Header {
	t.Helper()
	h, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader(% X) failed: %v", buf, err)
	}
	return h
}

func TestLength128k44100(t *testing.T) {
	t.Parallel()
	// The canonical 128 kbps / 44.1 kHz Layer III frame: 417 bytes
	// unpadded, 418 with the padding bit set.
	h := mustParse(t, []byte{0xFF, 0xFB, 0x90, 0xC0})
	n, err := Length(h)
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if n != 417 {
		t.Errorf("unpadded length = %d, want 417", n)
	}

	padded := mustParse(t, []byte{0xFF, 0xFB, 0x92, 0xC0})
	n, err = Length(padded)
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if n != 418 {
		t.Errorf("padded length = %d, want 418", n)
	}
}

func TestLengthCRC(t *testing.T) {
	t.Parallel()
	// A protected frame carries two extra CRC bytes.
	h := mustParse(t, []byte{0xFF, 0xFA, 0x90, 0xC0})
	n, err := Length(h)
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if n != 419 {
		t.Errorf("protected length = %d, want 419", n)
	}
}

func TestLengthSpotChecks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		buf  []byte
		want int
	}{
		// MPEG-1 Layer I: 384 samples, 128 kbps, 44.1 kHz.
		{"MPEG-1 Layer I", []byte{0xFF, 0xFF, 0x40, 0xC0}, 139},
		// MPEG-2 Layer III: 576 samples, 64 kbps, 22.05 kHz.
		{"MPEG-2 Layer III", []byte{0xFF, 0xF3, 0x80, 0xC0}, 208},
		// MPEG-1 Layer II: 1152 samples, 192 kbps, 48 kHz.
		{"MPEG-1 Layer II", []byte{0xFF, 0xFD, 0xA4, 0xC0}, 576},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := mustParse(t, tt.buf)
			n, err := Length(h)
			if err != nil {
				t.Fatalf("Length failed: %v", err)
			}
			if n != tt.want {
				t.Errorf("length = %d, want %d", n, tt.want)
			}
		})
	}
}

func TestLengthMonotonicInBitrate(t *testing.T) {
	t.Parallel()
	// Higher bitrate never shrinks the frame for fixed version, layer,
	// and sample rate.
	prev := 0
	for idx := 1; idx <= 14; idx++ {
		buf := []byte{0xFF, 0xFB, byte(idx << 4), 0xC0}
		h := mustParse(t, buf)
		n, err := Length(h)
		if err != nil {
			t.Fatalf("Length at index %d failed: %v", idx, err)
		}
		if n < prev {
			t.Errorf("length at index %d = %d, below previous %d", idx, n, prev)
		}
		prev = n
	}
}

func TestLengthFreeBitrate(t *testing.T) {
	t.Parallel()
	h := mustParse(t, []byte{0xFF, 0xFB, 0x00, 0xC0})
	if _, err := Length(h); !errors.Is(err, ErrFreeBitrate) {
		t.Errorf("Length on free format = %v, want ErrFreeBitrate", err)
	}
	if _, err := PayloadLength(h); !errors.Is(err, ErrFreeBitrate) {
		t.Errorf("PayloadLength on free format = %v, want ErrFreeBitrate", err)
	}
}

func TestPayloadLength(t *testing.T) {
	t.Parallel()
	unprotected := mustParse(t, []byte{0xFF, 0xFB, 0x90, 0xC0})
	n, err := PayloadLength(unprotected)
	if err != nil {
		t.Fatalf("PayloadLength failed: %v", err)
	}
	if n != 413 {
		t.Errorf("unprotected payload = %d, want 413", n)
	}

	protected := mustParse(t, []byte{0xFF, 0xFA, 0x90, 0xC0})
	n, err = PayloadLength(protected)
	if err != nil {
		t.Fatalf("PayloadLength failed: %v", err)
	}
	if n != 413 {
		t.Errorf("protected payload = %d, want 413", n)
	}
}

func TestSampleCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		buf  []byte
		want int
	}{
		{"MPEG-1 Layer I", []byte{0xFF, 0xFF, 0x40, 0xC0}, 384},
		{"MPEG-1 Layer II", []byte{0xFF, 0xFD, 0x40, 0xC0}, 1152},
		{"MPEG-1 Layer III", []byte{0xFF, 0xFB, 0x90, 0xC0}, 1152},
		{"MPEG-2 Layer III", []byte{0xFF, 0xF3, 0x80, 0xC0}, 576},
		{"MPEG-2.5 Layer III", []byte{0xFF, 0xE3, 0x80, 0xC0}, 576},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := mustParse(t, tt.buf)
			if got := h.SampleCount(); got != tt.want {
				t.Errorf("sample count = %d, want %d", got, tt.want)
			}
		})
	}
}
