// Package huffman builds static Huffman trees from byte-frequency
// histograms and derives prefix-free bit-string codes from them.
//
// Construction is fully deterministic: leaves enter the queue in
// ascending byte-value order, and the queue breaks frequency ties
// first-in first-out, so a given frequency table always produces the
// same tree and the same codes.
//
// NOTE: 0 represents left and 1 represents right.
package huffman

import (
	"errors"
	"strconv"
)

// ErrNoSymbols is returned when the frequency table has no non-zero
// entries, i.e. the input was empty and no tree can be built.
var ErrNoSymbols = errors.New("huffman: no symbols to encode")

// Node is one node of a Huffman tree. A leaf carries a byte value, an
// internal node carries exactly two children and the sum of their
// frequencies.
type Node struct {
	value       byte
	leaf        bool
	freq        uint64
	left, right *Node
}

// IsLeaf reports whether n carries a byte value rather than children.
func (n *Node) IsLeaf() bool { return n.leaf }

// Frequency returns the occurrence count this node stands for.
func (n *Node) Frequency() uint64 { return n.freq }

// BuildTree constructs the Huffman tree for t by repeatedly merging the
// two lowest-frequency nodes. The first node dequeued becomes the left
// child, the second the right.
func BuildTree(t *FrequencyTable) (*Node, error) {
	q := &PriorityQueue{}
	for i := 0; i < len(t); i++ {
		if f := t[i]; f > 0 {
			q.Enqueue(&Node{value: byte(i), leaf: true, freq: f}, f)
		}
	}

	for q.Size() > 1 {
		left := q.Dequeue()
		right := q.Dequeue()
		merged := &Node{freq: left.freq + right.freq, left: left, right: right}
		q.Enqueue(merged, merged.freq)
	}

	root := q.Dequeue()
	if root == nil {
		return nil, ErrNoSymbols
	}
	return root, nil
}

// Render serializes the tree as its parenthesized textual form: a leaf
// is the decimal byte value, an internal node is "(left right)".
func (n *Node) Render() string {
	if n == nil {
		return ""
	}
	if n.leaf {
		return strconv.Itoa(int(n.value))
	}
	return "(" + n.left.Render() + " " + n.right.Render() + ")"
}
