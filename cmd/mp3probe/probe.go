package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	id3v2 "github.com/bogem/id3v2/v2"

	"github.com/zsiec/mpegaudio/demux"
)

// report summarizes one probed file.
type report struct {
	File          string  `json:"file"`
	Frames        int     `json:"frames"`
	BytesConsumed int64   `json:"bytesConsumed"`
	BytesSkipped  int64   `json:"bytesSkipped"`
	ID3TagBytes   int64   `json:"id3TagBytes,omitempty"`
	Title         string  `json:"title,omitempty"`
	Artist        string  `json:"artist,omitempty"`
	Version       string  `json:"version,omitempty"`
	Layer         string  `json:"layer,omitempty"`
	SampleRate    int     `json:"sampleRate,omitempty"`
	ChannelMode   string  `json:"channelMode,omitempty"`
	Bitrate       int     `json:"bitrate,omitempty"`
	VBR           bool    `json:"vbr"`
	Seconds       float64 `json:"seconds"`
}

func (r *report) print(w io.Writer) {
	fmt.Fprintf(w, "%s: %d frames", r.File, r.Frames)
	if r.Frames > 0 {
		fmt.Fprintf(w, ", %s %s, %d Hz, %s", r.Version, r.Layer, r.SampleRate, r.ChannelMode)
		if r.VBR {
			fmt.Fprintf(w, ", VBR")
		} else {
			fmt.Fprintf(w, ", %d kbps", r.Bitrate/1000)
		}
		fmt.Fprintf(w, ", %s", time.Duration(r.Seconds*float64(time.Second)).Round(time.Millisecond))
	}
	if r.BytesSkipped > 0 {
		fmt.Fprintf(w, ", %d bytes skipped", r.BytesSkipped)
	}
	if r.Title != "" || r.Artist != "" {
		fmt.Fprintf(w, " (%s - %s)", r.Artist, r.Title)
	}
	fmt.Fprintln(w)
}

// errSkipTolerance is returned when -max-skip is exceeded. Corruption
// tolerance is a caller policy, not scanner behavior, so it lives here.
var errSkipTolerance = errors.New("skipped bytes exceed tolerance")

func probeFile(ctx context.Context, path string, maxSkip int64) (*report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := &report{File: path}
	r.ID3TagBytes = skipID3(f, r)

	ps, err := demux.Parse(ctx, f)
	if err != nil {
		return nil, err
	}

	r.Frames = len(ps.Frames)
	r.BytesConsumed = ps.BytesConsumed
	r.BytesSkipped = ps.BytesSkipped
	r.Seconds = ps.Duration().Seconds()

	if len(ps.Frames) > 0 {
		h := ps.Frames[0].Header
		r.Version = h.Version.String()
		r.Layer = h.Layer.String()
		r.SampleRate = h.SampleRate
		r.ChannelMode = h.ChannelMode.String()
		r.Bitrate = h.Bitrate
		for i := range ps.Frames {
			if ps.Frames[i].Header.Bitrate != h.Bitrate {
				r.VBR = true
				break
			}
		}
	}

	if maxSkip >= 0 && ps.BytesSkipped > maxSkip {
		return r, fmt.Errorf("%w: %d > %d", errSkipTolerance, ps.BytesSkipped, maxSkip)
	}
	return r, nil
}

// skipID3 positions f past a leading ID3v2 tag, filling in tag metadata
// on the way. The scanner would step over the tag as resync noise anyway;
// skipping it keeps the noise out of the skipped-byte accounting.
func skipID3(f *os.File, r *report) int64 {
	tag, err := id3v2.ParseReader(f, id3v2.Options{Parse: true, ParseFrames: []string{"Title", "Artist"}})
	if err != nil || tag == nil || (!tag.HasFrames() && tag.Size() == 0) {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			slog.Warn("rewind failed", "file", f.Name(), "error", err)
		}
		return 0
	}

	r.Title = tag.Title()
	r.Artist = tag.Artist()

	size := int64(tag.Size())
	if _, err := f.Seek(size, io.SeekStart); err != nil {
		slog.Warn("seek past ID3 tag failed", "file", f.Name(), "error", err)
		return 0
	}
	slog.Debug("skipped ID3v2 tag", "file", f.Name(), "bytes", size)
	return size
}

// writeClean rewrites only the validated frames of src into dst, dropping
// everything the scanner skipped.
func writeClean(ctx context.Context, src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	skipID3(in, &report{})

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	s := demux.NewScanner(ctx, in)
	var frames int
	for {
		f, err := s.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			out.Close()
			return err
		}
		if _, err := out.Write(f.Data); err != nil {
			out.Close()
			return err
		}
		frames++
	}

	slog.Info("cleaned stream written",
		"output", dst,
		"frames", frames,
		"dropped_bytes", s.BytesSkipped(),
	)
	return out.Close()
}
