package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
)

// pcmChunkSamples is the number of interleaved samples converted per
// encoder write. go-mp3 always emits 16-bit stereo.
const pcmChunkSamples = 8192

// writeWAV decodes src to PCM and writes it as a 16-bit WAV file. Sample
// synthesis is go-mp3's job; the probe core never touches PCM.
func writeWAV(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	dec, err := gomp3.NewDecoder(in)
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(out, dec.SampleRate(), 16, 2, 1)

	raw := make([]byte, pcmChunkSamples*2)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: dec.SampleRate()},
		Data:           make([]int, pcmChunkSamples),
		SourceBitDepth: 16,
	}

	var written int64
	for {
		n, err := io.ReadFull(dec, raw)
		if n > 0 {
			samples := n / 2
			for i := 0; i < samples; i++ {
				buf.Data[i] = int(int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8))
			}
			buf.Data = buf.Data[:samples]
			if werr := enc.Write(buf); werr != nil {
				out.Close()
				return werr
			}
			buf.Data = buf.Data[:cap(buf.Data)]
			written += int64(samples)
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			out.Close()
			return err
		}
	}

	if err := enc.Close(); err != nil {
		out.Close()
		return err
	}

	slog.Info("WAV written",
		"output", dst,
		"sample_rate", dec.SampleRate(),
		"samples_per_channel", written/2,
	)
	return out.Close()
}
