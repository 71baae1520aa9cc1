package helpers

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("sup3rsecret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "sup3rsecret" {
		t.Fatal("hash equals plain text")
	}
	if !CompareHashAndPassword(hash, "sup3rsecret") {
		t.Fatal("correct password rejected")
	}
	if CompareHashAndPassword(hash, "wrongpassword") {
		t.Fatal("wrong password accepted")
	}
}
