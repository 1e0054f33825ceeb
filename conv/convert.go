package conv

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/propkit/propenc/lib/propenc"
	"github.com/propkit/propenc/lib/readers"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Stats describes a finished conversion
type Stats struct {
	BytesIn  int64
	BytesOut int64
	Chunks   int
	Duration time.Duration
}

// String returns a one line summary of the stats
func (s Stats) String() string {
	return fmt.Sprintf("%v in, %v out, %d chunks in %v", SizeSuffix(s.BytesIn), SizeSuffix(s.BytesOut), s.Chunks, s.Duration.Truncate(time.Millisecond))
}

// ToProperties returns a transformer turning text in enc into
// properties bytes.
func ToProperties(enc encoding.Encoding) transform.Transformer {
	return transform.Chain(enc.NewDecoder(), propenc.Properties.NewEncoder())
}

// FromProperties returns a transformer turning properties bytes into
// text in enc.
//
// If replace is set then characters enc can't represent are replaced
// rather than causing an error.
func FromProperties(enc encoding.Encoding, replace bool) transform.Transformer {
	encoder := enc.NewEncoder()
	if replace {
		encoder = encoding.ReplaceUnsupported(encoder)
	}
	return transform.Chain(propenc.Properties.NewDecoder(), encoder)
}

// countingWriter counts the bytes written through it
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (n int, err error) {
	n, err = cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// Convert copies src to dst through t.
//
// src is read in chunks of Config.ChunkSize. If ctx is cancelled no
// more chunks are read and its error is returned.
func Convert(ctx context.Context, dst io.Writer, src io.Reader, t transform.Transformer) (stats Stats, err error) {
	chunkSize := Config.ChunkSize
	if chunkSize <= 0 {
		return stats, ErrorChunkSize
	}
	start := time.Now()
	in := readers.NewCountingReader(src)
	out := &countingWriter{w: dst}
	defer func() {
		stats.BytesIn = in.BytesRead()
		stats.Chunks = in.Reads()
		stats.BytesOut = out.n
		stats.Duration = time.Since(start)
	}()

	r := readers.NewContextReader(ctx, in)
	w := transform.NewWriter(out, t)
	buf := make([]byte, chunkSize)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			if _, err = w.Write(buf[:n]); err != nil {
				return stats, &ConversionError{Offset: in.BytesRead() - int64(n), Err: err}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return stats, ctxErr
			}
			return stats, errors.Wrap(readErr, "read failed")
		}
	}
	if err = w.Close(); err != nil {
		return stats, &ConversionError{Offset: -1, Err: err}
	}
	return stats, nil
}

// EscapeKeys escapes each key so it can be used on the left of a
// key=value line.
//
// If encode is set the result is also passed through the properties
// encoder so it is pure ASCII.
func EscapeKeys(keys []string, encode bool) []string {
	out := make([]string, len(keys))
	for i, key := range keys {
		escaped := propenc.EscapeKey(key)
		if encode {
			escaped = string(propenc.EncodeString(escaped))
		}
		if escaped != key {
			Debugf(key, "escaped to %q", escaped)
		}
		out[i] = escaped
	}
	return out
}
