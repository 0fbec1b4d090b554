package models

import (
	"errors"
	"strings"
	"testing"
)

func TestRegisterDuplicateUsername(t *testing.T) {
	s := NewUserStore()
	if _, err := s.Register("neo", "p1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if s.Count() != 1 {
		t.Fatalf("count = %d, want 1", s.Count())
	}
	if _, err := s.Register("neo", "p2"); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("second register err = %v, want ErrDuplicateUsername", err)
	}
	if s.Count() != 1 {
		t.Fatalf("count after duplicate = %d, want 1", s.Count())
	}
}

func TestRegisterIsCaseSensitive(t *testing.T) {
	s := NewUserStore()
	if _, err := s.Register("Neo", "p"); err != nil {
		t.Fatalf("register Neo: %v", err)
	}
	if _, err := s.Register("neo", "p"); err != nil {
		t.Fatalf("register neo should not collide with Neo: %v", err)
	}
	if s.Count() != 2 {
		t.Fatalf("count = %d, want 2", s.Count())
	}
}

func TestRegisterEscapesUsername(t *testing.T) {
	s := NewUserStore()
	u, err := s.Register("<neo>", "p")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Username != "&lt;neo&gt;" {
		t.Fatalf("username = %q, want escaped form", u.Username)
	}
	if u.Alias != u.Username {
		t.Fatalf("alias = %q, want default alias = username", u.Alias)
	}
	if u.Role != RoleUser {
		t.Fatalf("role = %q, want User", u.Role)
	}
	if !strings.HasPrefix(u.AvatarColor, "hsl(") {
		t.Fatalf("avatar color %q not derived", u.AvatarColor)
	}
	// Same raw input resolves to the same escaped key.
	if _, err := s.Register("<neo>", "p2"); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("re-register raw form err = %v, want ErrDuplicateUsername", err)
	}
}

func TestAuthenticate(t *testing.T) {
	s := NewUserStore()
	if _, err := s.Register("neo", "knockknock"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := s.Authenticate("neo", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := s.Authenticate("smith", "knockknock"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user err = %v, want ErrInvalidCredentials", err)
	}
	u, err := s.Authenticate("neo", "knockknock")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.Username != "neo" {
		t.Fatalf("username = %q", u.Username)
	}
}

func TestAuthenticateEscapedUsername(t *testing.T) {
	s := NewUserStore()
	if _, err := s.Register("<neo>", "p"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := s.Authenticate("<neo>", "p"); err != nil {
		t.Fatalf("authenticate with raw username: %v", err)
	}
}

func TestSetAliasStoresRawMarkup(t *testing.T) {
	s := NewUserStore()
	if _, err := s.Register("neo", "p"); err != nil {
		t.Fatalf("register: %v", err)
	}
	alias := `<script>alert("The One")</script> & more`
	if err := s.SetAlias("neo", alias); err != nil {
		t.Fatalf("set alias: %v", err)
	}
	u, err := s.Get("neo")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.Alias != alias {
		t.Fatalf("alias = %q, want the raw string back", u.Alias)
	}
	if err := s.SetAlias("smith", "x"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("alias for unknown user err = %v, want ErrUserNotFound", err)
	}
}

func TestAvatarColorStableAcrossStores(t *testing.T) {
	s1 := NewUserStore()
	s2 := NewUserStore()
	u1, err := s1.Register("neo", "p")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	u2, err := s2.Register("neo", "p")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u1.AvatarColor != u2.AvatarColor {
		t.Fatalf("avatar colors differ across stores: %q vs %q", u1.AvatarColor, u2.AvatarColor)
	}
}
