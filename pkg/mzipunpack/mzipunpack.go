// Package mzipunpack reads MZIP artifacts back: it parses the three
// CRLF header lines, rebuilds the Huffman tree from its parenthesized
// rendering, and walks the packed payload MSB-first. The encoder never
// depends on this package; it exists for verification.
package mzipunpack

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/icza/bitio"
)

var (
	// ErrBadHeader is returned when the three CRLF-terminated header
	// lines cannot be parsed.
	ErrBadHeader = errors.New("mzipunpack: malformed header")
	// ErrLeafRoot is returned for artifacts whose tree is a single
	// leaf. Their codewords are zero bits long, so the original length
	// is not recoverable from the artifact. A limitation of the
	// format, not of this reader.
	ErrLeafRoot = errors.New("mzipunpack: single-leaf tree, original length not recoverable")
)

type node struct {
	value       byte
	left, right *node
}

func (n *node) isLeaf() bool { return n.left == nil && n.right == nil }

// Archive is a decoded MZIP artifact.
type Archive struct {
	Name    string // uppercased original filename from the header
	Tree    string // parenthesized tree rendering, as stored
	Padding int    // advertised padding-bit count
	Data    []byte // reconstructed original bytes
}

// Unpack decodes a complete MZIP artifact held in memory.
func Unpack(b []byte) (*Archive, error) {
	name, rest, err := headerLine(b)
	if err != nil {
		return nil, err
	}
	treeStr, rest, err := headerLine(rest)
	if err != nil {
		return nil, err
	}
	padStr, payload, err := headerLine(rest)
	if err != nil {
		return nil, err
	}

	padding, err := strconv.Atoi(string(padStr))
	if err != nil || padding < 1 || padding > 8 {
		return nil, fmt.Errorf("%w: padding %q", ErrBadHeader, padStr)
	}

	root, next, err := parseTree(string(treeStr), 0)
	if err != nil {
		return nil, err
	}
	if next != len(treeStr) {
		return nil, fmt.Errorf("%w: trailing tree data at %d", ErrBadHeader, next)
	}

	totalBits := len(payload)*8 - padding
	if totalBits < 0 {
		return nil, fmt.Errorf("%w: payload shorter than padding", ErrBadHeader)
	}
	if root.isLeaf() {
		return nil, ErrLeafRoot
	}

	data, err := decode(root, payload, totalBits)
	if err != nil {
		return nil, err
	}
	return &Archive{
		Name:    string(name),
		Tree:    string(treeStr),
		Padding: padding,
		Data:    data,
	}, nil
}

// headerLine splits off one CRLF-terminated line.
func headerLine(b []byte) (line, rest []byte, err error) {
	i := bytes.Index(b, []byte("\r\n"))
	if i < 0 {
		return nil, nil, fmt.Errorf("%w: missing CRLF", ErrBadHeader)
	}
	return b[:i], b[i+2:], nil
}

// parseTree parses the rendering at s[pos:]: a decimal byte value for a
// leaf, or "(" left " " right ")" for an internal node. It returns the
// node and the position just past it.
func parseTree(s string, pos int) (*node, int, error) {
	if pos >= len(s) {
		return nil, pos, fmt.Errorf("%w: truncated tree", ErrBadHeader)
	}
	if s[pos] != '(' {
		start := pos
		for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			pos++
		}
		if pos == start {
			return nil, pos, fmt.Errorf("%w: expected byte value at %d", ErrBadHeader, pos)
		}
		v, err := strconv.Atoi(s[start:pos])
		if err != nil || v > 255 {
			return nil, pos, fmt.Errorf("%w: byte value %q", ErrBadHeader, s[start:pos])
		}
		return &node{value: byte(v)}, pos, nil
	}

	left, pos, err := parseTree(s, pos+1)
	if err != nil {
		return nil, pos, err
	}
	if pos >= len(s) || s[pos] != ' ' {
		return nil, pos, fmt.Errorf("%w: expected space at %d", ErrBadHeader, pos)
	}
	right, pos, err := parseTree(s, pos+1)
	if err != nil {
		return nil, pos, err
	}
	if pos >= len(s) || s[pos] != ')' {
		return nil, pos, fmt.Errorf("%w: expected ')' at %d", ErrBadHeader, pos)
	}
	return &node{left: left, right: right}, pos + 1, nil
}

// decode walks the payload bit by bit, restarting from the root after
// every emitted byte and stopping once the padding region begins.
func decode(root *node, payload []byte, totalBits int) ([]byte, error) {
	r := bitio.NewReader(bytes.NewReader(payload))
	out := make([]byte, 0, 1024)
	consumed := 0
	for consumed < totalBits {
		n := root
		for !n.isLeaf() {
			if consumed >= totalBits {
				return nil, fmt.Errorf("mzipunpack: codeword runs into padding (decoded %d bytes)", len(out))
			}
			bit, err := r.ReadBool()
			if err != nil {
				return nil, fmt.Errorf("mzipunpack: read payload: %w", err)
			}
			consumed++
			if bit {
				n = n.right
			} else {
				n = n.left
			}
		}
		out = append(out, n.value)
	}
	return out, nil
}
