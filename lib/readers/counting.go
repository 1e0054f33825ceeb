package readers

import "io"

// CountingReader is an io.Reader which counts the bytes and reads
// which pass through it
type CountingReader struct {
	in    io.Reader
	read  int64
	reads int
}

// NewCountingReader returns a CountingReader reading from in
func NewCountingReader(in io.Reader) *CountingReader {
	return &CountingReader{in: in}
}

// Read reads from the underlying reader counting the bytes
func (c *CountingReader) Read(p []byte) (n int, err error) {
	n, err = c.in.Read(p)
	c.read += int64(n)
	if n > 0 {
		c.reads++
	}
	return n, err
}

// BytesRead returns how many bytes have been read
func (c *CountingReader) BytesRead() int64 {
	return c.read
}

// Reads returns how many reads returned data
func (c *CountingReader) Reads() int {
	return c.reads
}
