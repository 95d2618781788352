package service

import (
	"strings"
	"testing"
	"time"
)

func TestCodeIssuer_Generate(t *testing.T) {
	issuer := NewCodeIssuer()

	code, err := issuer.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(code) != 8 {
		t.Errorf("code length: got %d, want 8", len(code))
	}
	for _, c := range code {
		if !strings.ContainsRune(codeAlphabet, c) {
			t.Errorf("code %q contains character %q outside the alphabet", code, c)
		}
	}
}

func TestCodeIssuer_GenerateIsRandom(t *testing.T) {
	issuer := NewCodeIssuer()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := issuer.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("expected distinct codes across generations")
	}
}

func TestCodeIssuer_IsExpired(t *testing.T) {
	issuer := NewCodeIssuer()
	issuedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"immediately", issuedAt, false},
		{"just under the limit", issuedAt.Add(CodeTTL - time.Millisecond), false},
		{"exactly at the limit", issuedAt.Add(CodeTTL), false},
		{"just over the limit", issuedAt.Add(CodeTTL + time.Millisecond), true},
		{"long after", issuedAt.Add(time.Hour), true},
		{"client clock behind the server", issuedAt.Add(-CodeTTL - time.Second), true},
		{"client clock slightly behind", issuedAt.Add(-30 * time.Second), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := issuer.IsExpired(issuedAt, tc.now); got != tc.want {
				t.Errorf("IsExpired(%v): got %v, want %v", tc.now.Sub(issuedAt), got, tc.want)
			}
		})
	}
}
