package users

import (
	"context"
	"testing"

	"github.com/userhub/userhub/internal/models"
)

func TestMemoryRepository_CRUD(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u, err := repo.Insert(ctx, &models.User{Name: "Alice", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected assigned ID")
	}
	if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}

	got, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Name != "Alice" {
		t.Fatalf("unexpected user: %+v", got)
	}

	byEmail, err := repo.GetByEmail(ctx, "a@b.c")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail == nil || byEmail.ID != u.ID {
		t.Fatalf("unexpected user by email: %+v", byEmail)
	}

	renamed, err := repo.UpdateName(ctx, u.ID, "Alicia")
	if err != nil {
		t.Fatalf("update name: %v", err)
	}
	if renamed.Name != "Alicia" {
		t.Fatalf("expected renamed user, got %+v", renamed)
	}
	if !renamed.UpdatedAt.After(renamed.CreatedAt) && !renamed.UpdatedAt.Equal(renamed.CreatedAt) {
		t.Fatalf("updatedAt went backwards: %+v", renamed)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 user, got %d", len(all))
	}

	if err := repo.SetAvatarKey(ctx, u.ID, "avatars/u1.png"); err != nil {
		t.Fatalf("set avatar: %v", err)
	}
	got, _ = repo.GetByID(ctx, u.ID)
	if got.AvatarKey != "avatars/u1.png" {
		t.Fatalf("avatar key not stored: %+v", got)
	}

	if err := repo.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil after delete, got %+v", got)
	}
}

func TestMemoryRepository_NotFound(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u, err := repo.GetByID(ctx, "nope")
	if err != nil || u != nil {
		t.Fatalf("expected (nil, nil) for missing user, got (%v, %v)", u, err)
	}
	if _, err := repo.UpdateName(ctx, "nope", "X"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.SetAvatarKey(ctx, "nope", "k"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u, _ := repo.Insert(ctx, &models.User{Name: "Alice"})
	got, _ := repo.GetByID(ctx, u.ID)
	got.Name = "mutated"

	again, _ := repo.GetByID(ctx, u.ID)
	if again.Name != "Alice" {
		t.Fatalf("store mutated through returned copy: %+v", again)
	}
}
