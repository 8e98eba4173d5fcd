package repo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"mzip_go/internal/model"
)

var ErrNotFound = errors.New("not found")

// 인터페이스
type RunRepo interface {
	Save(ctx context.Context, run *model.CompressionRun) error
	FindByName(ctx context.Context, name string) (*model.CompressionRun, error)
	List(ctx context.Context) ([]*model.CompressionRun, error)
}

type runRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*model.CompressionRun
}

func NewRunRepoInMemory() RunRepo {
	return &runRepoInMemory{store: make(map[string]*model.CompressionRun)}
}

func (r *runRepoInMemory) Save(_ context.Context, run *model.CompressionRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[run.Name] = run
	return nil
}

func (r *runRepoInMemory) FindByName(_ context.Context, name string) (*model.CompressionRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.store[name]
	if !ok {
		return nil, ErrNotFound
	}
	return run, nil
}

func (r *runRepoInMemory) List(_ context.Context) ([]*model.CompressionRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.CompressionRun, 0, len(r.store))
	for _, run := range r.store {
		out = append(out, run)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
