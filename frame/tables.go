package frame

// Bitrate table (kbps), indexed by the header's 4-bit bitrate index.
// Index 0 is the free format, index 15 is invalid and rejected before
// lookup. MPEG-2 and MPEG-2.5 share columns, and within them Layers II
// and III share one column.
var bitrateKbps = [5][15]int{
	{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448}, // MPEG-1 Layer I
	{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384},    // MPEG-1 Layer II
	{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},     // MPEG-1 Layer III
	{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256},    // MPEG-2/2.5 Layer I
	{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},         // MPEG-2/2.5 Layer II & III
}

// Sample-rate table (Hz), indexed by version and the header's 2-bit
// sample-rate index. Index 3 is reserved and rejected before lookup.
// Each version halves the rates of the one before it.
var sampleRateHz = [3][3]int{
	{44100, 48000, 32000}, // MPEG-1
	{22050, 24000, 16000}, // MPEG-2
	{11025, 12000, 8000},  // MPEG-2.5
}

// bitrateColumn picks the bitrateKbps column for a version/layer pair.
func bitrateColumn(v Version, l Layer) int {
	if v == MPEG1 {
		switch l {
		case LayerI:
			return 0
		case LayerII:
			return 1
		default:
			return 2
		}
	}
	if l == LayerI {
		return 3
	}
	return 4
}

// samplesPerFrame returns the PCM samples per channel one frame encodes.
// Only Layer III differs across versions: MPEG-2/2.5 halve its frame to
// 576 samples.
func samplesPerFrame(v Version, l Layer) int {
	switch l {
	case LayerI:
		return 384
	case LayerII:
		return 1152
	default:
		if v == MPEG1 {
			return 1152
		}
		return 576
	}
}
