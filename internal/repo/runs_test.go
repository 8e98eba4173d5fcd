package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"mzip_go/internal/model"
)

func TestInMemorySaveAndFind(t *testing.T) {
	r := NewRunRepoInMemory()
	ctx := context.Background()

	run := &model.CompressionRun{
		Name:         "notes.txt",
		ArtifactName: "NOTES.MZIP",
		OriginalSize: 100,
		CreatedAt:    time.Now(),
	}
	if err := r.Save(ctx, run); err != nil {
		t.Fatal(err)
	}

	got, err := r.FindByName(ctx, "notes.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got.ArtifactName != "NOTES.MZIP" {
		t.Fatalf("ArtifactName = %q", got.ArtifactName)
	}
}

func TestInMemoryFindMissing(t *testing.T) {
	r := NewRunRepoInMemory()
	if _, err := r.FindByName(context.Background(), "ghost.txt"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestInMemorySaveOverwritesByName(t *testing.T) {
	r := NewRunRepoInMemory()
	ctx := context.Background()

	first := &model.CompressionRun{Name: "a.txt", OriginalSize: 1}
	second := &model.CompressionRun{Name: "a.txt", OriginalSize: 2}
	if err := r.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := r.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := r.FindByName(ctx, "a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got.OriginalSize != 2 {
		t.Fatalf("OriginalSize = %d, want the second save", got.OriginalSize)
	}

	runs, err := r.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}
}

func TestInMemoryListNewestFirst(t *testing.T) {
	r := NewRunRepoInMemory()
	ctx := context.Background()
	base := time.Now()

	for i, name := range []string{"old.txt", "mid.txt", "new.txt"} {
		run := &model.CompressionRun{Name: name, CreatedAt: base.Add(time.Duration(i) * time.Second)}
		if err := r.Save(ctx, run); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := r.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"new.txt", "mid.txt", "old.txt"}
	for i, w := range want {
		if runs[i].Name != w {
			t.Fatalf("runs[%d] = %q, want %q", i, runs[i].Name, w)
		}
	}
}
