package frame

// HeaderSize is the on-wire size of the frame header word.
const HeaderSize = 4

// CRCSize is the on-wire size of the optional CRC that follows the header.
const CRCSize = 2

// Length returns the total on-wire size in bytes of the frame described by
// h: header word, optional CRC, payload, and padding byte. Free-format
// headers (bitrate 0) have no derivable length and return ErrFreeBitrate;
// a scanner must fall back to sync-word search for the next frame.
func Length(h Header) (int, error) {
	if h.Bitrate == 0 {
		return 0, ErrFreeBitrate
	}

	n := h.SampleCount() * h.Bitrate / (8 * h.SampleRate)
	if h.Padded {
		n++
	}
	if h.HasCRC {
		n += CRCSize
	}
	return n, nil
}

// PayloadLength returns the number of payload bytes in the frame described
// by h: the total length minus the header word and the CRC when present.
func PayloadLength(h Header) (int, error) {
	n, err := Length(h)
	if err != nil {
		return 0, err
	}
	n -= HeaderSize
	if h.HasCRC {
		n -= CRCSize
	}
	return n, nil
}
