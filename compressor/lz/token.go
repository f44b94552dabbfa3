package lz

import (
	"encoding/binary"
	"fmt"
)

const (
	countSize = 4
	// TokenSize is the serialized size of one token: distance, length, literal.
	TokenSize = 4 + 4 + 1
)

// Token is one step of the LZ77 parse. A literal token has zero distance and
// length and carries one byte; a copy token repeats Length bytes found
// Distance bytes back, then emits Literal.
type Token struct {
	Distance uint32
	Length   uint32
	Literal  byte
}

// IsLiteral reports whether t carries a single unmatched byte.
func (t Token) IsLiteral() bool {
	return t.Distance == 0 && t.Length == 0
}

// Span is the number of output bytes t produces.
func (t Token) Span() int {
	if t.IsLiteral() {
		return 1
	}
	return int(t.Length) + 1
}

// MarshalTokens writes the token count followed by every token, all integers
// little-endian.
func MarshalTokens(tokens []Token) []byte {
	out := make([]byte, countSize+TokenSize*len(tokens))
	binary.LittleEndian.PutUint32(out, uint32(len(tokens)))
	p := out[countSize:]
	for _, t := range tokens {
		binary.LittleEndian.PutUint32(p[0:4], t.Distance)
		binary.LittleEndian.PutUint32(p[4:8], t.Length)
		p[8] = t.Literal
		p = p[TokenSize:]
	}
	return out
}

// UnmarshalTokens parses a buffer produced by MarshalTokens. The buffer must
// hold exactly the number of tokens it declares.
func UnmarshalTokens(data []byte) ([]Token, error) {
	if len(data) < countSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedTokens, len(data), countSize)
	}
	count := uint64(binary.LittleEndian.Uint32(data))
	body := data[countSize:]
	if uint64(len(body)) != count*TokenSize {
		return nil, fmt.Errorf("%w: %d tokens declared, %d bytes follow", ErrMalformedTokens, count, len(body))
	}
	tokens := make([]Token, count)
	for i := range tokens {
		tokens[i] = Token{
			Distance: binary.LittleEndian.Uint32(body[0:4]),
			Length:   binary.LittleEndian.Uint32(body[4:8]),
			Literal:  body[8],
		}
		body = body[TokenSize:]
	}
	return tokens, nil
}
