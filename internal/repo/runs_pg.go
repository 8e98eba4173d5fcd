package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mzip_go/internal/model"
)

type runRepoPG struct {
	pool *pgxpool.Pool
}

func NewRunRepoPG(pool *pgxpool.Pool) RunRepo {
	return &runRepoPG{pool: pool}
}

func (r *runRepoPG) Save(ctx context.Context, run *model.CompressionRun) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO compression_runs
  (name, artifact_name, original_size, compressed_size, ratio, padding, checksum, zstd_size, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (name) DO UPDATE SET
  artifact_name = EXCLUDED.artifact_name,
  original_size = EXCLUDED.original_size,
  compressed_size = EXCLUDED.compressed_size,
  ratio = EXCLUDED.ratio,
  padding = EXCLUDED.padding,
  checksum = EXCLUDED.checksum,
  zstd_size = EXCLUDED.zstd_size,
  created_at = EXCLUDED.created_at`,
		run.Name, run.ArtifactName, run.OriginalSize, run.CompressedSize,
		run.Ratio, run.Padding, run.Checksum, run.ZstdSize, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

func (r *runRepoPG) FindByName(ctx context.Context, name string) (*model.CompressionRun, error) {
	var run model.CompressionRun
	err := r.pool.QueryRow(ctx, `
SELECT name, artifact_name, original_size, compressed_size, ratio, padding, checksum, zstd_size, created_at
FROM compression_runs WHERE name = $1`, name).Scan(
		&run.Name, &run.ArtifactName, &run.OriginalSize, &run.CompressedSize,
		&run.Ratio, &run.Padding, &run.Checksum, &run.ZstdSize, &run.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find run: %w", err)
	}
	return &run, nil
}

func (r *runRepoPG) List(ctx context.Context) ([]*model.CompressionRun, error) {
	rows, err := r.pool.Query(ctx, `
SELECT name, artifact_name, original_size, compressed_size, ratio, padding, checksum, zstd_size, created_at
FROM compression_runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	out := make([]*model.CompressionRun, 0)
	for rows.Next() {
		var run model.CompressionRun
		if err := rows.Scan(
			&run.Name, &run.ArtifactName, &run.OriginalSize, &run.CompressedSize,
			&run.Ratio, &run.Padding, &run.Checksum, &run.ZstdSize, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, &run)
	}
	return out, rows.Err()
}
