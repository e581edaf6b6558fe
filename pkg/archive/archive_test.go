package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dkrasnow/m2scope/pkg/resolve"
)

func report(id, repo string, age time.Duration) Report {
	return Report{
		ID:         id,
		Repository: repo,
		CreatedAt:  time.Now().Add(-age),
		Result: &resolve.Result{
			Coordinate: resolve.Coordinate{Group: "lib", Artifact: "core", Version: "1.0"},
		},
	}
}

func TestMemoryStoreSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	want := report("r1", "/repo", 0)
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx, "r1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ID != "r1" || got.Repository != "/repo" {
		t.Errorf("got %+v", got)
	}
	if got.Result == nil || got.Result.Artifact != "core" {
		t.Errorf("result not preserved: %+v", got.Result)
	}
}

func TestMemoryStoreLoadMissing(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Load(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first := report("r1", "/a", 0)
	second := report("r1", "/b", 0)
	if err := s.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load(ctx, "r1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Repository != "/b" {
		t.Errorf("Repository = %q, want /b", got.Repository)
	}
}

func TestMemoryStoreRecent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, r := range []Report{
		report("old", "/repo", 2 * time.Hour),
		report("new", "/repo", 0),
		report("mid", "/repo", time.Hour),
		report("other", "/elsewhere", 0),
	} {
		if err := s.Save(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := s.Recent(ctx, "/repo", 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len = %d, want 2", len(recent))
	}
	if recent[0].ID != "new" || recent[1].ID != "mid" {
		t.Errorf("order = %s, %s; want new, mid", recent[0].ID, recent[1].ID)
	}
}
