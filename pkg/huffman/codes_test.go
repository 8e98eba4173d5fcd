package huffman

import (
	"bytes"
	"strings"
	"testing"
)

func tableFor(t *testing.T, data []byte) (*FrequencyTable, CodeTable) {
	t.Helper()
	ft, err := CountFrequencies(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	root, err := BuildTree(ft)
	if err != nil {
		t.Fatal(err)
	}
	return ft, Codes(root)
}

func TestCountFrequencies(t *testing.T) {
	ft, err := CountFrequencies(strings.NewReader("abbccc"))
	if err != nil {
		t.Fatal(err)
	}
	if ft['a'] != 1 || ft['b'] != 2 || ft['c'] != 3 {
		t.Fatalf("counts = a:%d b:%d c:%d", ft['a'], ft['b'], ft['c'])
	}
	if ft.Total() != 6 {
		t.Fatalf("Total() = %d, want 6", ft.Total())
	}
}

func TestCodesArePrefixFree(t *testing.T) {
	_, codes := tableFor(t, []byte("abracadabra, a sample with spaces and 1234 digits!"))

	var assigned []string
	for _, c := range codes {
		if c != "" {
			assigned = append(assigned, c)
		}
	}
	if len(assigned) < 2 {
		t.Fatal("test input should produce at least two codes")
	}
	for i, a := range assigned {
		for j, b := range assigned {
			if i != j && strings.HasPrefix(b, a) {
				t.Fatalf("code %q is a prefix of %q", a, b)
			}
		}
	}
}

func TestPayloadBitsMatchesPerByteSum(t *testing.T) {
	data := []byte("mississippi river measurements 2023")
	ft, codes := tableFor(t, data)

	var want uint64
	for _, b := range data {
		want += uint64(len(codes[b]))
	}
	if got := codes.PayloadBits(ft); got != want {
		t.Fatalf("PayloadBits() = %d, want %d", got, want)
	}
}
