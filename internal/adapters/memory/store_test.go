package memory_test

import (
	"context"
	"testing"

	"github.com/example/cardforge/internal/adapters/memory"
)

type snapshot struct {
	Name   string         `json:"name"`
	Scores map[string]int `json:"scores"`
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	in := snapshot{Name: "duel-1", Scores: map[string]int{"A": 3}}
	if err := store.Save(ctx, "k", in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var out snapshot
	ok, err := store.Load(ctx, "k", &out)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatalf("Load reported absent for a saved key")
	}
	if out.Name != "duel-1" || out.Scores["A"] != 3 {
		t.Errorf("round-trip mismatch: %+v", out)
	}
}

func TestStore_ValuesDoNotAlias(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	in := snapshot{Name: "duel-1", Scores: map[string]int{"A": 3}}
	if err := store.Save(ctx, "k", in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Mutating the caller's value after Save must not change what Load
	// returns, and mutating a loaded value must not affect later loads.
	in.Scores["A"] = 99

	var first snapshot
	if _, err := store.Load(ctx, "k", &first); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if first.Scores["A"] != 3 {
		t.Errorf("stored value aliases the saved value: %+v", first)
	}

	first.Scores["A"] = 77
	var second snapshot
	if _, err := store.Load(ctx, "k", &second); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if second.Scores["A"] != 3 {
		t.Errorf("loaded value aliases the store: %+v", second)
	}
}

func TestStore_AbsentKeyIsNotAnError(t *testing.T) {
	store := memory.NewStore()

	var out snapshot
	ok, err := store.Load(context.Background(), "missing", &out)
	if err != nil {
		t.Fatalf("Load of absent key errored: %v", err)
	}
	if ok {
		t.Errorf("Load reported present for an absent key")
	}
}

func TestStore_ExistsAndDelete(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	if err := store.Save(ctx, "k", 1); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	ok, err := store.Exists(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v; want true, nil", ok, err)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	ok, err = store.Exists(ctx, "k")
	if err != nil || ok {
		t.Fatalf("Exists after delete = %v, %v; want false, nil", ok, err)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete of absent key errored: %v", err)
	}
}
