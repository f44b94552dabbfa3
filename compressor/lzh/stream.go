package lzh

import (
	"bytes"
	"io"
	"sync"
)

// compressionCore buffers everything written to it. The container needs the
// whole input up front, so nothing reaches the destination before Close.
type compressionCore struct {
	lock        sync.Mutex
	isClosed    bool
	inputBuffer bytes.Buffer
	dest        io.Writer
	opts        *Options
}

// CompressionWriter is the io.WriteCloser returned by NewWriter.
type CompressionWriter struct {
	core  *compressionCore
	stats Stats
}

// NewWriter returns a writer that compresses everything written to it into
// one container and writes that container to w on Close. opts may be nil.
func NewWriter(w io.Writer, opts *Options) *CompressionWriter {
	newCompressionCore := new(compressionCore)
	newCompressionCore.dest, newCompressionCore.opts = w, opts
	return &CompressionWriter{core: newCompressionCore}
}

func (cw *CompressionWriter) Write(data []byte) (int, error) {
	cw.core.lock.Lock()
	defer cw.core.lock.Unlock()
	if cw.core.isClosed {
		return 0, ErrWriterClosed
	}
	return cw.core.inputBuffer.Write(data)
}

// Close compresses the buffered input and writes the container. It does not
// close the underlying writer.
func (cw *CompressionWriter) Close() error {
	cw.core.lock.Lock()
	defer cw.core.lock.Unlock()
	if cw.core.isClosed {
		return nil
	}
	cw.core.isClosed = true
	compressed, stats, err := CompressWithStats(cw.core.inputBuffer.Bytes(), cw.core.opts)
	if err != nil {
		return err
	}
	cw.stats = stats
	cw.core.inputBuffer.Reset()
	_, err = cw.core.dest.Write(compressed)
	return err
}

// Stats reports the stage sizes of the container written by Close.
func (cw *CompressionWriter) Stats() Stats {
	cw.core.lock.Lock()
	defer cw.core.lock.Unlock()
	return cw.stats
}

// NewReader reads a whole container from r and returns a reader over the
// decompressed bytes. opts may be nil.
func NewReader(r io.Reader, opts *DecompressOptions) (io.Reader, error) {
	container, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	decompressed, err := Decompress(container, opts)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(decompressed), nil
}
