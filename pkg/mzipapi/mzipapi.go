// Package mzipapi is the HTTP client for the compression-statistics
// server.
package mzipapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// 지정값: 로컬 서버 기본 주소
var baseURL = "http://localhost:8080/api/v1/"

// SetBaseURL points the client at a different server.
func SetBaseURL(u string) {
	if u != "" {
		baseURL = u
	}
}

// Run mirrors the server's run record JSON.
type Run struct {
	Name           string    `json:"name"`
	ArtifactName   string    `json:"artifact_name"`
	OriginalSize   int64     `json:"original_size"`
	CompressedSize int64     `json:"compressed_size"`
	Ratio          float64   `json:"ratio"`
	Padding        int       `json:"padding"`
	Checksum       string    `json:"checksum"`
	ZstdSize       int64     `json:"zstd_size"`
	CreatedAt      time.Time `json:"created_at"`
}

// EncodeResult is a remote encode: the artifact bytes plus the stats
// the server reported in its response headers.
type EncodeResult struct {
	ArtifactName   string
	OriginalSize   int64
	CompressedSize int64
	Padding        int
	Artifact       []byte
}

// EncodeFile uploads the file at path to the server and returns the
// artifact it produced.
func EncodeFile(path string) (*EncodeResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", baseURL+"encode", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("encode %s: server said %s: %s", path, resp.Status, payload)
	}

	origSize, _ := strconv.ParseInt(resp.Header.Get("X-Mzip-Original-Size"), 10, 64)
	compSize, _ := strconv.ParseInt(resp.Header.Get("X-Mzip-Compressed-Size"), 10, 64)
	padding, _ := strconv.Atoi(resp.Header.Get("X-Mzip-Padding"))
	return &EncodeResult{
		ArtifactName:   resp.Header.Get("X-Mzip-Artifact-Name"),
		OriginalSize:   origSize,
		CompressedSize: compSize,
		Padding:        padding,
		Artifact:       payload,
	}, nil
}

// ListRuns fetches every recorded compression run.
func ListRuns() ([]Run, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(baseURL + "runs")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list runs: server said %s: %s", resp.Status, data)
	}

	var runs []Run
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal runs: %w", err)
	}
	return runs, nil
}
