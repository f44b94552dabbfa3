package huffman

import (
	"bytes"
	"errors"
	"io"

	"github.com/icza/bitio"
)

// bitWriter packs codes MSB-first into a byte buffer.
type bitWriter struct {
	buf bytes.Buffer
	w   *bitio.Writer
}

func newBitWriter() *bitWriter {
	bw := new(bitWriter)
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

func (bw *bitWriter) writeCode(c Code) error {
	return bw.w.WriteBits(c.Bits, c.Len)
}

func (bw *bitWriter) writeBit(bit bool) error {
	return bw.w.WriteBool(bit)
}

// bytes flushes the pending bits, zero-padding the final byte.
func (bw *bitWriter) bytes() ([]byte, error) {
	if err := bw.w.Close(); err != nil {
		return nil, err
	}
	return bw.buf.Bytes(), nil
}

// bitReader unpacks bits MSB-first and counts how many it handed out.
type bitReader struct {
	r    *bitio.Reader
	read int
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{r: bitio.NewReader(bytes.NewReader(data))}
}

func (br *bitReader) readBit() (bool, error) {
	bit, err := br.r.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, ErrTruncatedBitstream
		}
		return false, err
	}
	br.read++
	return bit, nil
}

// bytesConsumed is the number of whole or partial bytes the reader touched.
func (br *bitReader) bytesConsumed() int {
	return (br.read + 7) / 8
}

// PackBits packs bits MSB-first, zero-padding the final byte.
func PackBits(bits []bool) []byte {
	bw := newBitWriter()
	for _, bit := range bits {
		// bytes.Buffer writes never fail
		_ = bw.writeBit(bit)
	}
	out, _ := bw.bytes()
	return out
}

// UnpackBits expands data into its bits, MSB-first, padding included.
func UnpackBits(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, b>>uint(i)&1 == 1)
		}
	}
	return bits
}
