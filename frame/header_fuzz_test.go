package frame

import "testing"

func FuzzParseHeader(f *testing.F) {
	// Seed: valid MPEG-1 Layer III header.
	f.Add([]byte{0xFF, 0xFB, 0x90, 0xC0})
	// Seed: protected Layer I joint stereo.
	f.Add([]byte{0xFF, 0xFE, 0x40, 0x60})
	// Seed: reserved version bits.
	f.Add([]byte{0xFF, 0xEB, 0x90, 0xC0})
	// Seed: free bitrate.
	f.Add([]byte{0xFF, 0xFB, 0x00, 0xC0})

	f.Fuzz(func(t *testing.T, data []byte) {
		h, err := ParseHeader(data)
		if err != nil {
			return
		}

		// A constructed header is structurally valid: every resolved
		// field must come from the tables.
		if h.SampleRate == 0 {
			t.Errorf("decoded header with zero sample rate: %+v", h)
		}
		if h.Bitrate < 0 || h.Bitrate > 448000 {
			t.Errorf("decoded header with out-of-table bitrate: %+v", h)
		}
		if h.ChannelMode != JointStereo && h.ModeExt != (ModeExtension{}) {
			t.Errorf("mode extension present outside joint stereo: %+v", h)
		}

		// Length is defined exactly when the bitrate is not free, and a
		// defined length always covers header, CRC, and at least the
		// payload boundary.
		n, err := Length(h)
		if h.Bitrate == 0 {
			if err == nil {
				t.Errorf("free-format header produced a length: %+v", h)
			}
			return
		}
		if err != nil {
			t.Errorf("Length failed on valid header %+v: %v", h, err)
			return
		}
		min := HeaderSize
		if h.HasCRC {
			min += CRCSize
		}
		if n < min {
			t.Errorf("length %d smaller than header overhead for %+v", n, h)
		}

		// Re-encoding the decoded header reproduces a decodable word
		// with identical semantics.
		enc := EncodeHeader(h)
		h2, err := ParseHeader(enc[:])
		if err != nil {
			t.Errorf("re-encode of %+v produced undecodable word % X: %v", h, enc, err)
			return
		}
		if h != h2 {
			t.Errorf("encode/decode drift: %+v != %+v", h, h2)
		}
	})
}
