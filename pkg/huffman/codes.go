package huffman

// CodeTable maps each byte value to its bit-string code ("0"/"1"
// characters). Only bytes with a non-zero frequency get an entry; the
// rest stay as the empty string and must never be looked up.
type CodeTable [256]string

// Codes derives the code table from root by depth-first traversal,
// appending "0" when descending left and "1" when descending right.
// When the root is itself a leaf (single distinct byte in the input)
// its code is the empty bit-string: every occurrence encodes to zero
// bits.
func Codes(root *Node) CodeTable {
	var t CodeTable
	assignCodes(root, "", &t)
	return t
}

func assignCodes(n *Node, code string, t *CodeTable) {
	if n == nil {
		return
	}
	if n.leaf {
		t[n.value] = code
		return
	}
	assignCodes(n.left, code+"0", t)
	assignCodes(n.right, code+"1", t)
}

// PayloadBits returns the number of payload bits the table produces for
// the given frequencies, before padding.
func (c *CodeTable) PayloadBits(t *FrequencyTable) uint64 {
	var bits uint64
	for i := 0; i < len(t); i++ {
		bits += t[i] * uint64(len(c[i]))
	}
	return bits
}
