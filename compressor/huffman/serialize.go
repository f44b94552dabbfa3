package huffman

import "fmt"

const (
	tagNode byte = 0
	tagLeaf byte = 1

	// A tree over 256 symbols is at most 255 edges deep.
	maxTreeDepth = 255
)

// SerializeTree encodes tree in pre-order: a leaf is 1 followed by its
// symbol, an internal node is 0 followed by its left and right subtrees.
// The nil tree encodes to no bytes.
func SerializeTree(tree Tree) []byte {
	return appendTree(nil, tree)
}

func appendTree(dst []byte, tree Tree) []byte {
	switch i := tree.(type) {
	case Leaf:
		dst = append(dst, tagLeaf, i.Symbol)
	case *Node:
		dst = append(dst, tagNode)
		dst = appendTree(dst, i.Left)
		dst = appendTree(dst, i.Right)
	}
	return dst
}

// DeserializeTree rebuilds the tree at the start of data and returns it with
// the number of bytes it occupied. An empty data yields the nil tree.
func DeserializeTree(data []byte) (Tree, int, error) {
	if len(data) == 0 {
		return nil, 0, nil
	}
	d := treeDecoder{data: data}
	tree, err := d.decode(0)
	if err != nil {
		return nil, 0, err
	}
	return tree, d.pos, nil
}

type treeDecoder struct {
	data []byte
	pos  int
	seen [256]bool
}

func (d *treeDecoder) next() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, fmt.Errorf("%w: cursor %d past %d bytes", ErrTruncatedTree, d.pos, len(d.data))
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *treeDecoder) decode(depth int) (Tree, error) {
	if depth > maxTreeDepth {
		return nil, fmt.Errorf("%w: deeper than %d levels", ErrTruncatedTree, maxTreeDepth)
	}
	tag, err := d.next()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagLeaf:
		symbol, err := d.next()
		if err != nil {
			return nil, err
		}
		if d.seen[symbol] {
			return nil, fmt.Errorf("%w: symbol %#02x appears twice", ErrTruncatedTree, symbol)
		}
		d.seen[symbol] = true
		return Leaf{Symbol: symbol}, nil
	case tagNode:
		left, err := d.decode(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := d.decode(depth + 1)
		if err != nil {
			return nil, err
		}
		return &Node{Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("%w: invalid tag %d at offset %d", ErrTruncatedTree, tag, d.pos-1)
	}
}
