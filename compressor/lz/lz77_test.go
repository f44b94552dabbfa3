package lz

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	rng := rand.New(rand.NewSource(7))
	noise := make([]byte, 4096)
	rng.Read(noise)
	lowEntropy := make([]byte, 8192)
	for i := range lowEntropy {
		lowEntropy[i] = "abcd"[rng.Intn(4)]
	}
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "run", data: []byte("aaaaaaaaaa")},
		{name: "abab", data: []byte("ABABABAB")},
		{name: "text", data: []byte("to be or not to be, that is the question; to be or not")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 500)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 5000)},
		{name: "noise", data: noise},
		{name: "low-entropy", data: lowEntropy},
	}
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	finders := []FinderKind{FinderHashChain, FinderExhaustive}
	for _, in := range testInputSet() {
		for _, finder := range finders {
			for _, window := range []int{0, 1, 16, 1024} {
				name := fmt.Sprintf("%s/%s/window-%d", in.name, finder, window)
				t.Run(name, func(t *testing.T) {
					opts := &Options{WindowSize: window, MinMatch: 3, Finder: finder}
					out, err := Decompress(Compress(in.data, opts), nil)
					if err != nil {
						t.Fatalf("Decompress failed: %v", err)
					}
					if !bytes.Equal(out, in.data) {
						t.Fatalf("round-trip mismatch: got=%d want=%d bytes", len(out), len(in.data))
					}
				})
			}
		}
	}
}

func TestCompress_FindersAgree(t *testing.T) {
	for _, in := range testInputSet() {
		for _, window := range []int{4, 64, 1024} {
			t.Run(fmt.Sprintf("%s/window-%d", in.name, window), func(t *testing.T) {
				chain := Compress(in.data, &Options{WindowSize: window, MinMatch: 3, Finder: FinderHashChain})
				scan := Compress(in.data, &Options{WindowSize: window, MinMatch: 3, Finder: FinderExhaustive})
				if len(chain) != len(scan) {
					t.Fatalf("token count: chain=%d exhaustive=%d", len(chain), len(scan))
				}
				for i := range chain {
					if chain[i] != scan[i] {
						t.Fatalf("token %d: chain=%+v exhaustive=%+v", i, chain[i], scan[i])
					}
				}
			})
		}
	}
}

func TestCompress_ABAB(t *testing.T) {
	tokens := Compress([]byte("ABABABAB"), &Options{WindowSize: 8, MinMatch: 3})
	want := []Token{
		{Literal: 'A'},
		{Literal: 'B'},
		{Distance: 2, Length: 5, Literal: 'B'},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %+v want %+v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("token %d: got %+v want %+v", i, tokens[i], want[i])
		}
	}
}

func TestCompress_OverlappingRun(t *testing.T) {
	tokens := Compress([]byte("aaaaaaaaaa"), nil)
	if len(tokens) != 2 {
		t.Fatalf("expected literal + self-referential copy, got %+v", tokens)
	}
	if tokens[1].Distance != 1 || tokens[1].Length != 8 || tokens[1].Literal != 'a' {
		t.Fatalf("unexpected copy token %+v", tokens[1])
	}
}

func TestCompress_TieBreakPrefersFurthest(t *testing.T) {
	// "abc" occurs at 0 and 4; the copy at 8 must point at offset 0.
	tokens := Compress([]byte("abcXabcYabcZ"), &Options{WindowSize: 64, MinMatch: 3, Finder: FinderExhaustive})
	var copies []Token
	for _, tok := range tokens {
		if !tok.IsLiteral() {
			copies = append(copies, tok)
		}
	}
	if len(copies) != 2 || copies[1].Distance != 8 {
		t.Fatalf("unexpected copies %+v", copies)
	}
}

func TestCompress_MinMatch(t *testing.T) {
	tokens := Compress([]byte("abcabcx"), &Options{WindowSize: 64, MinMatch: 4})
	for _, tok := range tokens {
		if !tok.IsLiteral() {
			t.Fatalf("match shorter than MinMatch emitted: %+v", tok)
		}
	}
}

func TestCompress_WindowBound(t *testing.T) {
	data := append(append([]byte("0123456789"), bytes.Repeat([]byte{'-'}, 40)...), []byte("0123456789")...)
	for _, tok := range Compress(data, &Options{WindowSize: 16, MinMatch: 3}) {
		if tok.Distance > 16 {
			t.Fatalf("token reaches outside the window: %+v", tok)
		}
	}
}

func TestCompress_Progress(t *testing.T) {
	data := bytes.Repeat([]byte("progress"), 64)
	total := 0
	opts := DefaultOptions()
	opts.Progress = func(n int) { total += n }
	Compress(data, opts)
	if total != len(data) {
		t.Fatalf("progress total: got=%d want=%d", total, len(data))
	}
}

func TestDecompress_InvalidBackReference(t *testing.T) {
	cases := []struct {
		name   string
		tokens []Token
	}{
		{name: "before-start", tokens: []Token{{Distance: 1, Length: 3, Literal: 'x'}}},
		{name: "too-far", tokens: []Token{{Literal: 'a'}, {Distance: 2, Length: 1, Literal: 'b'}}},
		{name: "zero-distance", tokens: []Token{{Literal: 'a'}, {Length: 4, Literal: 'b'}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decompress(tc.tokens, nil)
			if !errors.Is(err, ErrInvalidBackReference) {
				t.Fatalf("expected ErrInvalidBackReference, got %v", err)
			}
		})
	}
}

func TestDecompress_MaxOutputSize(t *testing.T) {
	tokens := []Token{{Literal: 'a'}, {Distance: 1, Length: 1 << 20, Literal: 'a'}}
	_, err := Decompress(tokens, &DecompressOptions{MaxOutputSize: 1024})
	if !errors.Is(err, ErrOutputTooLarge) {
		t.Fatalf("expected ErrOutputTooLarge, got %v", err)
	}
}

func TestTokens_Format(t *testing.T) {
	tokens := []Token{{Literal: 'A'}, {Distance: 2, Length: 5, Literal: 'B'}}
	want := []byte{
		2, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 'A',
		2, 0, 0, 0, 5, 0, 0, 0, 'B',
	}
	got := MarshalTokens(tokens)
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x want % x", got, want)
	}
	back, err := UnmarshalTokens(got)
	if err != nil {
		t.Fatalf("UnmarshalTokens failed: %v", err)
	}
	if len(back) != 2 || back[0] != tokens[0] || back[1] != tokens[1] {
		t.Fatalf("got %+v want %+v", back, tokens)
	}
}

func TestUnmarshalTokens_Malformed(t *testing.T) {
	valid := MarshalTokens([]Token{{Literal: 'A'}, {Distance: 1, Length: 3, Literal: 'B'}})
	cases := map[string][]byte{
		"empty":         {},
		"short-count":   {1, 0},
		"truncated":     valid[:len(valid)-1],
		"trailing-byte": append(append([]byte{}, valid...), 0),
		"huge-count":    {0xFF, 0xFF, 0xFF, 0xFF},
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := UnmarshalTokens(data); !errors.Is(err, ErrMalformedTokens) {
				t.Fatalf("expected ErrMalformedTokens, got %v", err)
			}
		})
	}
}

func TestParseFinderKind(t *testing.T) {
	for _, k := range []FinderKind{FinderHashChain, FinderExhaustive} {
		got, err := ParseFinderKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseFinderKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseFinderKind("suffix-array"); err == nil {
		t.Fatal("expected error for unknown finder")
	}
}
