// Package huffman implements the entropy coding stage: a minimum-redundancy
// tree over the bytes of a buffer, its prefix-free code table, MSB-first bit
// packing and a compact pre-order serialization of the tree.
//
// Ties between equal frequencies are broken by creation order: leaves are
// created in ascending byte order before any internal node, and each new
// internal node ranks after everything created before it. The first node
// taken from the heap becomes the left child.
package huffman

import "fmt"

// Compress encodes data with a tree built from its own frequencies. It
// returns the packed payload, the tree needed to decode it and the number of
// symbols encoded, which the decoder needs to ignore the padding bits.
func Compress(data []byte) ([]byte, Tree, int, error) {
	tree := BuildTree(data)
	if tree == nil {
		return nil, nil, 0, nil
	}
	table := BuildCodes(tree)
	bw := newBitWriter()
	for _, symbol := range data {
		code, ok := table.Lookup(symbol)
		if !ok {
			return nil, nil, 0, fmt.Errorf("symbol %#02x does not exist in huffman tree", symbol)
		}
		if err := bw.writeCode(code); err != nil {
			return nil, nil, 0, err
		}
	}
	payload, err := bw.bytes()
	if err != nil {
		return nil, nil, 0, err
	}
	return payload, tree, len(data), nil
}

// Decompress decodes n symbols from payload using tree.
func Decompress(payload []byte, tree Tree, n int) ([]byte, error) {
	out, _, err := DecompressN(payload, tree, n)
	return out, err
}

// DecompressN is Decompress that also reports how many payload bytes held
// the decoded bits. Decoding stops as soon as n symbols are out, so the
// padding of the final byte is never read as data.
func DecompressN(payload []byte, tree Tree, n int) ([]byte, int, error) {
	if n < 0 {
		return nil, 0, fmt.Errorf("negative symbol count %d", n)
	}
	if n == 0 {
		return []byte{}, 0, nil
	}
	if tree == nil {
		return nil, 0, ErrMissingTree
	}
	out := make([]byte, 0, n)
	br := newBitReader(payload)

	// A single leaf is coded with one bit per symbol.
	if leaf, ok := tree.(Leaf); ok {
		for len(out) < n {
			if _, err := br.readBit(); err != nil {
				return nil, 0, fmt.Errorf("%w: decoded %d of %d symbols", err, len(out), n)
			}
			out = append(out, leaf.Symbol)
		}
		return out, br.bytesConsumed(), nil
	}

	node := tree
	for len(out) < n {
		bit, err := br.readBit()
		if err != nil {
			return nil, 0, fmt.Errorf("%w: decoded %d of %d symbols", err, len(out), n)
		}
		inner, ok := node.(*Node)
		if !ok {
			return nil, 0, fmt.Errorf("%w: walked into a non-node", ErrTruncatedBitstream)
		}
		if bit {
			node = inner.Right
		} else {
			node = inner.Left
		}
		if leaf, ok := node.(Leaf); ok {
			out = append(out, leaf.Symbol)
			node = tree
		}
	}
	return out, br.bytesConsumed(), nil
}
