package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"

	"mzip_go/internal/model"
	"mzip_go/internal/repo"
	"mzip_go/pkg/logger"
	"mzip_go/pkg/mzip"
)

// EncodeService compresses uploaded files and records per-run
// statistics. The zstd size is stored alongside the MZIP size as a
// reference point for the ratio column.
type EncodeService struct {
	repo   repo.RunRepo
	logger logger.Logger
	zstd   *zstd.Encoder
}

func NewEncodeService(r repo.RunRepo, l logger.Logger) (*EncodeService, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	return &EncodeService{repo: r, logger: l, zstd: enc}, nil
}

// Encode compresses data under its original filename, records the run,
// and returns the run record together with the raw artifact bytes.
func (s *EncodeService) Encode(ctx context.Context, name string, data []byte) (*model.CompressionRun, []byte, error) {
	if name == "" {
		return nil, nil, errors.New("filename is required")
	}

	var artifact bytes.Buffer
	res, err := mzip.Encode(name, data, &artifact)
	if err != nil {
		return nil, nil, err
	}

	run := &model.CompressionRun{
		Name:           name,
		ArtifactName:   res.ArtifactName,
		OriginalSize:   int64(res.OriginalSize),
		CompressedSize: int64(res.CompressedSize),
		Ratio:          float64(res.CompressedSize) / float64(res.OriginalSize),
		Padding:        res.Padding,
		Checksum:       fmt.Sprintf("%016x", xxhash.Sum64(data)),
		ZstdSize:       int64(len(s.zstd.EncodeAll(data, nil))),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, run); err != nil {
		return nil, nil, err
	}
	s.logger.Infof("run recorded: %s -> %s (%d -> %d bytes)",
		run.Name, run.ArtifactName, run.OriginalSize, run.CompressedSize)
	return run, artifact.Bytes(), nil
}

func (s *EncodeService) GetByName(ctx context.Context, name string) (*model.CompressionRun, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *EncodeService) List(ctx context.Context) ([]*model.CompressionRun, error) {
	return s.repo.List(ctx)
}
