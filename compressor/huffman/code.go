package huffman

import "strings"

// Code is the root-to-leaf path of a symbol. The first edge is the most
// significant of the Len low bits of Bits; left is 0, right is 1.
// 64 bits hold any path: a tree that deep needs more than 10^13 input bytes.
type Code struct {
	Bits uint64
	Len  uint8
}

func (c Code) String() string {
	var sb strings.Builder
	for i := int(c.Len) - 1; i >= 0; i-- {
		if c.Bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// CodeTable maps each byte value present in the tree to its Code.
type CodeTable struct {
	codes   [256]Code
	present [256]bool
}

// Lookup returns the code for symbol and whether the symbol has one.
func (t *CodeTable) Lookup(symbol byte) (Code, bool) {
	return t.codes[symbol], t.present[symbol]
}

// Symbols returns the symbols that have a code, in ascending order.
func (t *CodeTable) Symbols() []byte {
	var symbols []byte
	for s, ok := range t.present {
		if ok {
			symbols = append(symbols, byte(s))
		}
	}
	return symbols
}

// BuildCodes walks tree and assigns every leaf its path. A tree made of a
// single leaf has no edges, so that leaf gets the one-bit code 0.
func BuildCodes(tree Tree) *CodeTable {
	table := new(CodeTable)
	if leaf, ok := tree.(Leaf); ok {
		table.codes[leaf.Symbol] = Code{Bits: 0, Len: 1}
		table.present[leaf.Symbol] = true
		return table
	}
	getSymbolEncoding(tree, table, Code{})
	return table
}

func getSymbolEncoding(tree Tree, table *CodeTable, prefix Code) {
	switch i := tree.(type) {
	case Leaf:
		table.codes[i.Symbol] = prefix
		table.present[i.Symbol] = true
	case *Node:
		getSymbolEncoding(i.Left, table, Code{Bits: prefix.Bits << 1, Len: prefix.Len + 1})
		getSymbolEncoding(i.Right, table, Code{Bits: prefix.Bits<<1 | 1, Len: prefix.Len + 1})
	}
}
