package graph

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	perr "openship/internal/platform/errors"
	"openship/internal/platform/logger"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	initialBufSize = 64 * 1024
	maxLineSize    = 32 * 1024 * 1024
	diagRawMax     = 16 * 1024 // max bytes of a malformed line kept for diagnostics
)

// LineError describes a line that could not be decoded
type LineError struct {
	Line int    // 1-based line number in the artifact
	Raw  string // the offending line, untrimmed; a prefix when the line was too long
	Err  error
}

func (e LineError) Error() string { return fmt.Sprintf("graph: line %d: %v", e.Line, e.Err) }

// Unwrap returns the decode error
func (e LineError) Unwrap() error { return e.Err }

// Stats are side counters collected during a single read
type Stats struct {
	Lines      int            `json:"lines" yaml:"lines"`
	Blank      int            `json:"blank" yaml:"blank"`
	Malformed  int            `json:"malformed" yaml:"malformed"`
	Duplicates int            `json:"duplicates" yaml:"duplicates"`
	Total      int            `json:"total" yaml:"total"`
	ByScope    map[string]int `json:"by_scope" yaml:"by_scope"`
}

// Result is the outcome of a complete read
type Result struct {
	Records []Record
	Stats   Stats
}

// Reader streams and deduplicates graph artifacts
// a Reader holds configuration only and is safe for concurrent use
type Reader struct {
	log     *logger.Logger
	onDiag  func(LineError)
	maxLine int
}

// Option configures a Reader
type Option func(*Reader)

// WithLogger sets the logger used for diagnostics
func WithLogger(l *logger.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.log = l
		}
	}
}

// WithDiagnostics registers a hook called once per malformed line
func WithDiagnostics(fn func(LineError)) Option {
	return func(r *Reader) { r.onDiag = fn }
}

// WithMaxLineSize caps the longest decoded line in bytes; longer lines are skipped and reported
func WithMaxLineSize(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.maxLine = n
		}
	}
}

// NewReader builds a Reader with the given options
func NewReader(opts ...Option) *Reader {
	r := &Reader{maxLine: maxLineSize}
	for _, o := range opts {
		o(r)
	}
	if r.log == nil {
		r.log = logger.Named("graph")
	}
	return r
}

// ReadDeduplicated reads the artifact at path with default options
func ReadDeduplicated(ctx context.Context, path string) ([]Record, error) {
	res, err := NewReader().Read(ctx, path)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// Read opens path and consumes it completely
// open failures and mid-stream I/O failures are fatal; malformed and oversized lines are not
func (r *Reader) Read(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, perr.WrapFS(err, "graph: open artifact %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.log.Warn().Err(cerr).Str("path", path).Msg("graph: close artifact")
		}
	}()

	res, err := r.ReadFrom(ctx, f)
	if err != nil {
		return Result{}, err
	}
	r.log.Debug().
		Str("path", path).
		Int("lines", res.Stats.Lines).
		Int("records", res.Stats.Total).
		Int("duplicates", res.Stats.Duplicates).
		Int("malformed", res.Stats.Malformed).
		Msg("graph: artifact read")
	return res, nil
}

// ReadFrom consumes src line by line; the caller owns src
func (r *Reader) ReadFrom(ctx context.Context, src io.Reader) (Result, error) {
	seen := make(map[string]struct{})
	out := make([]Record, 0)
	stats := Stats{ByScope: map[string]int{}}

	text := transform.NewReader(src, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	lines := newLineReader(text, r.maxLine)

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		line, tooLong, err := lines.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "graph: read failed after line %d", stats.Lines)
		}
		stats.Lines++

		if tooLong {
			stats.Malformed++
			r.report(LineError{Line: stats.Lines, Raw: string(line), Err: ErrLineTooLong})
			continue
		}

		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			stats.Blank++
			continue
		}

		rec, err := decodeRecord(trimmed)
		if err != nil {
			stats.Malformed++
			r.report(LineError{Line: stats.Lines, Raw: string(line), Err: err})
			continue
		}

		k := rec.Key()
		if _, dup := seen[k]; dup {
			stats.Duplicates++
			continue
		}
		seen[k] = struct{}{}
		out = append(out, rec)
		stats.ByScope[rec.S]++
	}

	stats.Total = len(out)
	return Result{Records: out, Stats: stats}, nil
}

// report sends a malformed line to the log and the optional hook
func (r *Reader) report(le LineError) {
	r.log.Warn().
		Int("line", le.Line).
		Str("raw", truncateUTF8([]byte(le.Raw), diagRawMax)).
		Err(le.Err).
		Msg("graph: skipping malformed line")
	if r.onDiag != nil {
		r.onDiag(le)
	}
}

// truncateUTF8 cuts b to at most max bytes on a rune boundary and marks the cut
func truncateUTF8(b []byte, max int) string {
	if max <= 0 || len(b) <= max {
		return string(b)
	}
	i := max
	for i > 0 && (b[i]&0xC0) == 0x80 {
		i--
	}
	if i <= 0 {
		i = max
	}
	return string(b[:i]) + "..."
}
