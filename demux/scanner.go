package demux

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/zsiec/mpegaudio/frame"
)

// ErrTruncatedPayload marks end of input arriving inside a declared frame
// length. The partial frame is never emitted; the scanner resynchronizes
// within the remaining bytes instead. Surfaced only through debug logging.
var ErrTruncatedPayload = errors.New("demux: input ended inside a declared frame")

const defaultReadSize = 4096

// Scanner is a pull demuxer over an MPEG Audio elementary stream. Each
// call to Next returns the next validated frame; bytes that do not form a
// valid frame are skipped one at a time until the next sync word. A
// Scanner owns its buffer and is not safe for concurrent use; create one
// per parse.
type Scanner struct {
	ctx      context.Context
	reader   io.Reader
	log      *slog.Logger
	buf      []byte
	readBuf  []byte
	cursor   int
	readSize int
	eof      bool
	consumed int64
	skipped  int64
}

// NewScanner creates a Scanner reading from r. The context is checked on
// every Next iteration, so cancellation takes effect at the next frame
// boundary.
func NewScanner(ctx context.Context, r io.Reader, opts ...func(*Scanner)) *Scanner {
	s := &Scanner{
		ctx:      ctx,
		reader:   r,
		log:      slog.Default(),
		readSize: defaultReadSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "demux")
	s.readBuf = make([]byte, s.readSize)
	return s
}

// ScannerOptLogger sets the logger used for debug-level resync events.
func ScannerOptLogger(log *slog.Logger) func(*Scanner) {
	return func(s *Scanner) {
		s.log = log
	}
}

// ScannerOptReadSize sets the chunk size for reads from the source
// (default 4096).
func ScannerOptReadSize(n int) func(*Scanner) {
	return func(s *Scanner) {
		s.readSize = n
	}
}

// BytesConsumed returns the total bytes consumed so far, framed and
// skipped alike.
func (s *Scanner) BytesConsumed() int64 {
	return s.consumed
}

// BytesSkipped returns the bytes skipped so far during resynchronization.
func (s *Scanner) BytesSkipped() int64 {
	return s.skipped
}

// Next returns the next validated frame from the stream. It returns
// io.EOF once the source is exhausted, the context error on cancellation,
// and any non-EOF read error from the source. Header decode failures,
// free-bitrate headers, and truncated trailing frames never surface as
// errors; each triggers a one-byte resynchronization step.
func (s *Scanner) Next() (*Frame, error) {
	for {
		if err := s.ctx.Err(); err != nil {
			return nil, err
		}

		ok, err := s.ensure(frame.HeaderSize)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Fewer than 4 bytes remain; they cannot start a frame.
			s.skip(len(s.buf) - s.cursor)
			return nil, io.EOF
		}

		window := s.buf[s.cursor:]

		// Cheap sync probe before attempting a full decode, so runs of
		// garbage skip without constructing errors.
		if window[0] != 0xFF || window[1]&0xE0 != 0xE0 {
			s.skip(1)
			continue
		}

		h, err := frame.ParseHeader(window)
		if err != nil {
			s.resync(err)
			continue
		}

		length, err := frame.Length(h)
		if err != nil {
			// Free-format header: valid, but its length is not derivable,
			// so fall back to sync-word search rather than guess.
			s.resync(err)
			continue
		}

		ok, err = s.ensure(length)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.resync(ErrTruncatedPayload)
			continue
		}

		data := make([]byte, length)
		copy(data, s.buf[s.cursor:s.cursor+length])
		s.cursor += length
		s.consumed += int64(length)
		s.compact()

		return &Frame{Header: h, Data: data}, nil
	}
}

// ensure fills the buffer until at least n bytes are available at the
// cursor. It reports false once end of input makes that impossible and
// propagates non-EOF read errors.
func (s *Scanner) ensure(n int) (bool, error) {
	for len(s.buf)-s.cursor < n {
		if s.eof {
			return false, nil
		}
		read, err := s.reader.Read(s.readBuf)
		if read > 0 {
			s.buf = append(s.buf, s.readBuf[:read]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.eof = true
				continue
			}
			return false, err
		}
	}
	return true, nil
}

// resync advances one byte past a failed frame candidate.
func (s *Scanner) resync(cause error) {
	s.log.Debug("resync", "offset", s.consumed, "error", cause)
	s.skip(1)
}

func (s *Scanner) skip(n int) {
	s.cursor += n
	s.consumed += int64(n)
	s.skipped += int64(n)
	s.compact()
}

// compact drops consumed bytes once they dominate the buffer, keeping
// resynchronization linear without copying on every skipped byte.
func (s *Scanner) compact() {
	if s.cursor < s.readSize || s.cursor*2 < len(s.buf) {
		return
	}
	s.buf = append(s.buf[:0], s.buf[s.cursor:]...)
	s.cursor = 0
}

// Parse drains r through a Scanner and returns the finalized stream. The
// returned ParsedStream holds whatever frames were collected even when a
// read error cut the scan short.
func Parse(ctx context.Context, r io.Reader, opts ...func(*Scanner)) (*ParsedStream, error) {
	s := NewScanner(ctx, r, opts...)
	ps := &ParsedStream{}
	for {
		f, err := s.Next()
		if err != nil {
			ps.BytesConsumed = s.BytesConsumed()
			ps.BytesSkipped = s.BytesSkipped()
			if errors.Is(err, io.EOF) {
				return ps, nil
			}
			return ps, err
		}
		ps.Frames = append(ps.Frames, *f)
	}
}
