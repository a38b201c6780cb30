package utils

import "testing"

func TestHashContent(t *testing.T) {
	a := HashContent([]byte("hello"))
	b := HashContent([]byte("hello"))
	c := HashContent([]byte("hello!"))

	if len(a) != 64 {
		t.Errorf("HashContent() returned hash of length %d, want 64", len(a))
	}
	if a != b {
		t.Errorf("HashContent() not deterministic: %s != %s", a, b)
	}
	if a == c {
		t.Error("Different content should produce different hashes")
	}
}
