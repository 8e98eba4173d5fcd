package model

import "time"

// CompressionRun records one encode of one input file.
type CompressionRun struct {
	Name           string    `json:"name"`            // original input filename
	ArtifactName   string    `json:"artifact_name"`   // derived MZIP filename
	OriginalSize   int64     `json:"original_size"`   // input bytes
	CompressedSize int64     `json:"compressed_size"` // artifact bytes, header included
	Ratio          float64   `json:"ratio"`           // compressed / original
	Padding        int       `json:"padding"`         // padding bits, 1..8
	Checksum       string    `json:"checksum"`        // xxhash64 of the input, hex
	ZstdSize       int64     `json:"zstd_size"`       // zstd reference size for comparison
	CreatedAt      time.Time `json:"created_at"`
}
