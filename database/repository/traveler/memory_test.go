package travelerRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecotour/models"
)

func TestMemoryTravelerRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("UpsertAndGet", func(t *testing.T) {
		repo := NewMemoryTravelerRepo()
		if err := repo.Upsert(ctx, models.TravelerProfile{ID: "alice", Name: "Alice"}); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}

		got, err := repo.GetByID(ctx, "alice")
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Name != "Alice" {
			t.Errorf("Expected Alice, got %s", got.Name)
		}
		if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
			t.Error("Expected timestamps to be set on insert")
		}
	})

	t.Run("UpsertOverwritesButKeepsCreatedAt", func(t *testing.T) {
		repo := NewMemoryTravelerRepo()
		if err := repo.Upsert(ctx, models.TravelerProfile{ID: "alice", Name: "Alice"}); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
		first, _ := repo.GetByID(ctx, "alice")

		time.Sleep(time.Millisecond)
		if err := repo.Upsert(ctx, models.TravelerProfile{ID: "alice", Name: "Alicia"}); err != nil {
			t.Fatalf("Second upsert failed: %v", err)
		}

		second, err := repo.GetByID(ctx, "alice")
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if second.Name != "Alicia" {
			t.Errorf("Expected overwrite, got %s", second.Name)
		}
		if !second.CreatedAt.Equal(first.CreatedAt) {
			t.Errorf("Expected CreatedAt preserved, got %v then %v", first.CreatedAt, second.CreatedAt)
		}
		if !second.UpdatedAt.After(first.UpdatedAt) {
			t.Errorf("Expected UpdatedAt to advance, got %v then %v", first.UpdatedAt, second.UpdatedAt)
		}
	})

	t.Run("GetByIDUnknown", func(t *testing.T) {
		repo := NewMemoryTravelerRepo()
		if _, err := repo.GetByID(ctx, "ghost"); !errors.Is(err, ErrTravelerNotFound) {
			t.Errorf("Expected ErrTravelerNotFound, got %v", err)
		}
	})

	t.Run("GetAllSortedByID", func(t *testing.T) {
		repo := NewMemoryTravelerRepo()
		for _, id := range []string{"carol", "alice", "bob"} {
			if err := repo.Upsert(ctx, models.TravelerProfile{ID: id, Name: id}); err != nil {
				t.Fatalf("Upsert(%s) failed: %v", id, err)
			}
		}

		all, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("Expected 3 profiles, got %d", len(all))
		}
		for i, expected := range []string{"alice", "bob", "carol"} {
			if all[i].ID != expected {
				t.Errorf("Expected %s at index %d, got %s", expected, i, all[i].ID)
			}
		}
	})

	t.Run("DeleteByID", func(t *testing.T) {
		repo := NewMemoryTravelerRepo()
		if err := repo.Upsert(ctx, models.TravelerProfile{ID: "alice"}); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
		if err := repo.DeleteByID(ctx, "alice"); err != nil {
			t.Fatalf("DeleteByID failed: %v", err)
		}
		if _, err := repo.GetByID(ctx, "alice"); !errors.Is(err, ErrTravelerNotFound) {
			t.Errorf("Expected deletion, got %v", err)
		}
		if err := repo.DeleteByID(ctx, "alice"); !errors.Is(err, ErrTravelerNotFound) {
			t.Errorf("Expected not-found on double delete, got %v", err)
		}
	})
}
