package store

import (
	"context"
	"errors"
	"testing"

	"github.com/smartinvest/apiserver/types"
)

func TestMemoryCreate_DuplicateKeepsFirstPassword(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, types.User{Username: "rafi", Password: "first"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := repo.Create(ctx, types.User{Username: "rafi", Password: "second"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("second Create: expected ErrDuplicate, got %v", err)
	}

	user, err := repo.GetByUsername(ctx, "rafi")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if user.Password != "first" {
		t.Fatalf("password = %q, want the first registration's %q", user.Password, "first")
	}
}

func TestMemoryGetByUsername_NotFound(t *testing.T) {
	repo := NewMemoryUserRepository()

	if _, err := repo.GetByUsername(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
