package security

import (
	"strings"
	"testing"
)

func TestRandomStringRejectsBadArguments(t *testing.T) {
	if _, err := RandomString(-1, clientTokenAlphabet); err == nil {
		t.Fatal("negative length must be rejected")
	}
	if _, err := RandomString(8, ""); err == nil {
		t.Fatal("empty alphabet must be rejected")
	}
}

func TestRandomStringZeroLengthIsEmpty(t *testing.T) {
	got, err := RandomString(0, clientTokenAlphabet)
	if err != nil {
		t.Fatalf("RandomString returned error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRandomStringSingleCharacterAlphabet(t *testing.T) {
	got, err := RandomString(6, "k")
	if err != nil {
		t.Fatalf("RandomString returned error: %v", err)
	}
	if got != "kkkkkk" {
		t.Fatalf("expected %q, got %q", "kkkkkk", got)
	}
}

func TestRandomStringStaysInAlphabet(t *testing.T) {
	const alphabet = "coffe123"

	got, err := RandomString(256, alphabet)
	if err != nil {
		t.Fatalf("RandomString returned error: %v", err)
	}
	if len(got) != 256 {
		t.Fatalf("expected 256 characters, got %d", len(got))
	}
	for _, char := range got {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("character %q is outside the alphabet", char)
		}
	}
}
