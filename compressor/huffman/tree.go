package huffman

import (
	"container/heap"
)

// Tree is a Huffman tree: either a Leaf or a Node. The nil Tree is the
// tree of an empty input.
type Tree interface {
	isTree()
}

// Leaf holds one symbol of the original input.
type Leaf struct {
	Symbol byte
}

// Node is an internal node; both children are always non-nil.
type Node struct {
	Left, Right Tree
}

func (Leaf) isTree() {}
func (*Node) isTree() {}

// heapItem carries the construction-only weight of a subtree. id orders
// items of equal frequency: leaves are numbered in ascending byte order,
// internal nodes continue the sequence as they are created.
type heapItem struct {
	freq, id int
	tree     Tree
}

type huffmanHeap []heapItem

func (hub *huffmanHeap) Push(item any) {
	*hub = append(*hub, item.(heapItem))
}

func (hub *huffmanHeap) Pop() any {
	popped := (*hub)[len(*hub)-1]
	(*hub) = (*hub)[:len(*hub)-1]
	return popped
}

func (hub huffmanHeap) Len() int {
	return len(hub)
}

func (hub huffmanHeap) Less(i, j int) bool {
	if hub[i].freq != hub[j].freq {
		return hub[i].freq < hub[j].freq
	}
	return hub[i].id < hub[j].id
}

func (hub huffmanHeap) Swap(i, j int) {
	hub[i], hub[j] = hub[j], hub[i]
}

// Frequencies counts the occurrences of every byte value in data.
func Frequencies(data []byte) [256]int {
	var freq [256]int
	for _, b := range data {
		freq[b]++
	}
	return freq
}

// BuildTree builds a minimum-redundancy tree over the bytes present in data.
// It returns nil for empty input and a lone Leaf when only one distinct byte
// occurs.
func BuildTree(data []byte) Tree {
	return buildTree(Frequencies(data))
}

func buildTree(symbolFreq [256]int) Tree {
	var treehub huffmanHeap
	monoId := 0
	for symbol, freq := range symbolFreq {
		if freq == 0 {
			continue
		}
		treehub = append(treehub, heapItem{
			freq: freq,
			id:   monoId,
			tree: Leaf{Symbol: byte(symbol)},
		})
		monoId++
	}
	switch treehub.Len() {
	case 0:
		return nil
	case 1:
		return treehub[0].tree
	}
	heap.Init(&treehub)
	for treehub.Len() > 1 {
		x := heap.Pop(&treehub).(heapItem)
		y := heap.Pop(&treehub).(heapItem)
		heap.Push(&treehub, heapItem{
			freq: x.freq + y.freq,
			id:   monoId,
			tree: &Node{Left: x.tree, Right: y.tree},
		})
		monoId++
	}
	return heap.Pop(&treehub).(heapItem).tree
}

// Equal reports whether a and b have the same shape and leaf symbols.
func Equal(a, b Tree) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x.Symbol == y.Symbol
	case *Node:
		y, ok := b.(*Node)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return false
}
