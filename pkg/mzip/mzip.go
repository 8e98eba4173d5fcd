// Package mzip writes the MZIP compression artifact: three CRLF-
// terminated ASCII header lines (uppercased original filename,
// parenthesized Huffman tree, decimal padding-bit count) followed by
// the packed codeword payload.
package mzip

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/icza/bitio"

	"mzip_go/pkg/huffman"
)

// ErrNoExtension is returned when the input filename contains no '.'
// and the artifact name cannot be derived. There is no fallback rule.
var ErrNoExtension = errors.New("mzip: filename has no extension")

// Result describes a finished encode.
type Result struct {
	ArtifactName   string // derived output filename
	Tree           string // parenthesized tree rendering from the header
	OriginalSize   uint64 // input length in bytes
	CompressedSize uint64 // artifact length in bytes, header included
	Padding        int    // zero bits appended after the last codeword, 1..8
}

// OutputName derives the artifact filename: the input name through its
// first '.' (inclusive), uppercased, with the literal suffix "MZIP".
// "report.v2.csv" becomes "REPORT.MZIP".
func OutputName(name string) (string, error) {
	i := strings.IndexByte(name, '.')
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrNoExtension, name)
	}
	return strings.ToUpper(name[:i+1]) + "MZIP", nil
}

// Encode compresses data, which was read from a file named name, and
// writes the artifact to w.
func Encode(name string, data []byte, w io.Writer) (*Result, error) {
	freqs, err := huffman.CountFrequencies(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("count frequencies: %w", err)
	}
	return encode(freqs, name, bytes.NewReader(data), w)
}

// EncodeFile compresses the file at path and writes the artifact next
// to it, under the name derived from its base name. The input is read
// twice: once to build the frequency table, once to emit codewords. An
// empty input fails with huffman.ErrNoSymbols before any output file is
// created; a missing input fails with an error matching fs.ErrNotExist.
func EncodeFile(path string) (*Result, error) {
	base := filepath.Base(path)
	outName, err := OutputName(base)
	if err != nil {
		return nil, err
	}

	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	freqs, err := huffman.CountFrequencies(bufio.NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("count frequencies: %w", err)
	}
	if freqs.Total() == 0 {
		return nil, fmt.Errorf("%s: %w", base, huffman.ErrNoSymbols)
	}
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind input: %w", err)
	}

	outPath := filepath.Join(filepath.Dir(path), outName)
	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create artifact: %w", err)
	}

	res, err := encode(freqs, base, bufio.NewReader(in), out)
	if err != nil {
		out.Close()
		os.Remove(outPath) // never leave a truncated artifact behind
		return nil, err
	}
	if err := out.Close(); err != nil {
		os.Remove(outPath)
		return nil, fmt.Errorf("close artifact: %w", err)
	}
	return res, nil
}

// encode writes the artifact for an input whose frequency table is
// already known, re-reading the raw bytes from second.
func encode(freqs *huffman.FrequencyTable, name string, second io.Reader, w io.Writer) (*Result, error) {
	if freqs.Total() == 0 {
		return nil, fmt.Errorf("%s: %w", name, huffman.ErrNoSymbols)
	}
	outName, err := OutputName(name)
	if err != nil {
		return nil, err
	}

	root, err := huffman.BuildTree(freqs)
	if err != nil {
		return nil, err
	}
	codes := huffman.Codes(root)
	tree := root.Render()

	// Padding lands in [1,8]: an already aligned payload still gets a
	// full extra byte of zero bits.
	totalBits := codes.PayloadBits(freqs)
	padding := int(8 - totalBits%8)

	bw := bufio.NewWriter(w)
	header := strings.ToUpper(name) + "\r\n" + tree + "\r\n" + strconv.Itoa(padding) + "\r\n"
	if _, err := bw.WriteString(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	bits := bitio.NewWriter(bw)
	buf := make([]byte, 64*1024)
	for {
		n, rerr := second.Read(buf)
		for i := 0; i < n; i++ {
			for _, bit := range []byte(codes[buf[i]]) {
				if err := bits.WriteBool(bit == '1'); err != nil {
					return nil, fmt.Errorf("write payload: %w", err)
				}
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("reread input: %w", rerr)
		}
	}
	if err := bits.WriteBits(0, uint8(padding)); err != nil {
		return nil, fmt.Errorf("write padding: %w", err)
	}
	if err := bits.Close(); err != nil {
		return nil, fmt.Errorf("flush payload: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("flush artifact: %w", err)
	}

	return &Result{
		ArtifactName:   outName,
		Tree:           tree,
		OriginalSize:   freqs.Total(),
		CompressedSize: uint64(len(header)) + (totalBits+uint64(padding))/8,
		Padding:        padding,
	}, nil
}
