package huffman

import "io"

// FrequencyTable holds the occurrence count of every possible byte value.
// A zero count means the byte never appears in the input.
type FrequencyTable [256]uint64

// CountFrequencies reads r to EOF and tallies how often each byte occurs.
func CountFrequencies(r io.Reader) (*FrequencyTable, error) {
	var t FrequencyTable
	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		for i := 0; i < n; i++ {
			t[buf[i]]++
		}
		if err == io.EOF {
			return &t, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Total returns the number of bytes counted, i.e. the input length.
func (t *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, f := range t {
		sum += f
	}
	return sum
}
