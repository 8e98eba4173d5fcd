package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"mzip_go/internal/repo"
	"mzip_go/pkg/huffman"
	"mzip_go/pkg/logger"
	"mzip_go/pkg/mzip"
)

func newService(t *testing.T) (*EncodeService, repo.RunRepo) {
	t.Helper()
	r := repo.NewRunRepoInMemory()
	svc, err := NewEncodeService(r, logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return svc, r
}

func TestEncodeRecordsRun(t *testing.T) {
	svc, runs := newService(t)
	ctx := context.Background()
	data := bytes.Repeat([]byte("log line: something happened\n"), 20)

	run, artifact, err := svc.Encode(ctx, "app.log", data)
	if err != nil {
		t.Fatal(err)
	}
	if run.ArtifactName != "APP.MZIP" {
		t.Errorf("ArtifactName = %q", run.ArtifactName)
	}
	if run.OriginalSize != int64(len(data)) {
		t.Errorf("OriginalSize = %d, want %d", run.OriginalSize, len(data))
	}
	if run.CompressedSize != int64(len(artifact)) {
		t.Errorf("CompressedSize = %d, artifact is %d bytes", run.CompressedSize, len(artifact))
	}
	if run.Ratio <= 0 {
		t.Errorf("Ratio = %f", run.Ratio)
	}
	if run.Padding < 1 || run.Padding > 8 {
		t.Errorf("Padding = %d", run.Padding)
	}
	if len(run.Checksum) != 16 {
		t.Errorf("Checksum = %q, want 16 hex digits", run.Checksum)
	}
	if run.ZstdSize <= 0 {
		t.Errorf("ZstdSize = %d", run.ZstdSize)
	}

	stored, err := runs.FindByName(ctx, "app.log")
	if err != nil {
		t.Fatalf("run was not persisted: %v", err)
	}
	if stored.Checksum != run.Checksum {
		t.Error("stored run differs from returned run")
	}
}

func TestEncodeChecksumIsStable(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	data := []byte("identical input, identical checksum")

	first, _, err := svc.Encode(ctx, "x.txt", data)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := svc.Encode(ctx, "x.txt", data)
	if err != nil {
		t.Fatal(err)
	}
	if first.Checksum != second.Checksum {
		t.Fatalf("checksums differ: %q vs %q", first.Checksum, second.Checksum)
	}
}

func TestEncodeEmptyData(t *testing.T) {
	svc, runs := newService(t)
	ctx := context.Background()

	if _, _, err := svc.Encode(ctx, "empty.txt", nil); !errors.Is(err, huffman.ErrNoSymbols) {
		t.Fatalf("err = %v, want ErrNoSymbols", err)
	}
	if _, err := runs.FindByName(ctx, "empty.txt"); !errors.Is(err, repo.ErrNotFound) {
		t.Fatal("failed encode must not record a run")
	}
}

func TestEncodeBadFilename(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if _, _, err := svc.Encode(ctx, "", []byte("data")); err == nil {
		t.Fatal("empty filename must fail")
	}
	if _, _, err := svc.Encode(ctx, "noext", []byte("data")); !errors.Is(err, mzip.ErrNoExtension) {
		t.Fatalf("err = %v, want ErrNoExtension", err)
	}
}
