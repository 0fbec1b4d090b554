package models

import "testing"

func TestSessionLifecycle(t *testing.T) {
	s := NewSessionStore()
	token := s.Create("neo")
	if token == "" {
		t.Fatal("empty token")
	}
	if username, ok := s.Resolve(token); !ok || username != "neo" {
		t.Fatalf("resolve = %q, %v", username, ok)
	}
	s.Destroy(token)
	if _, ok := s.Resolve(token); ok {
		t.Fatal("token survived destroy")
	}
	// Destroying again is harmless.
	s.Destroy(token)
}

func TestSessionTokensAreUnique(t *testing.T) {
	s := NewSessionStore()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token := s.Create("neo")
		if seen[token] {
			t.Fatalf("token %q issued twice", token)
		}
		seen[token] = true
	}
}

func TestSessionResolveUnknownToken(t *testing.T) {
	s := NewSessionStore()
	if _, ok := s.Resolve("nope"); ok {
		t.Fatal("resolved a token that was never issued")
	}
}
