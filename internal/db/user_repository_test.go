package db

import (
	"path/filepath"
	"testing"

	"coffeejournal/internal/models"
)

func TestUserRepositoryNormalizedEmailLookup(t *testing.T) {
	repos := openTestDatabase(t, filepath.Join(t.TempDir(), "journal.db"))

	user := models.User{Email: "barista@example.com", PasswordHash: "hash", DisplayName: "Ada"}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned user id")
	}

	found, err := repos.Users.FindByNormalizedEmail("barista@example.com")
	if err != nil {
		t.Fatalf("FindByNormalizedEmail: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, found.ID)
	}

	exists, err := repos.Users.ExistsByNormalizedEmail("barista@example.com")
	if err != nil || !exists {
		t.Fatalf("expected existing email: exists=%v err=%v", exists, err)
	}
	exists, err = repos.Users.ExistsByNormalizedEmail("ghost@example.com")
	if err != nil || exists {
		t.Fatalf("expected unknown email to not exist: exists=%v err=%v", exists, err)
	}
}

func TestUserRepositoryUniqueEmailIndex(t *testing.T) {
	repos := openTestDatabase(t, filepath.Join(t.TempDir(), "journal.db"))

	first := models.User{Email: "barista@example.com", PasswordHash: "hash"}
	if err := repos.Users.Create(&first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	duplicate := models.User{Email: "barista@example.com", PasswordHash: "hash"}
	if err := repos.Users.Create(&duplicate); err == nil {
		t.Fatal("expected unique index violation for duplicate email")
	}
}
