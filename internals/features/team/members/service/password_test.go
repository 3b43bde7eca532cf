package service

import (
	"strings"
	"testing"
)

func TestGeneratePassword(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		pw, err := GeneratePassword()
		if err != nil {
			t.Fatalf("GeneratePassword: %v", err)
		}
		if len(pw) != passwordLength {
			t.Fatalf("panjang password = %d; want %d", len(pw), passwordLength)
		}
		for _, r := range pw {
			if !strings.ContainsRune(passwordCharset, r) {
				t.Fatalf("karakter di luar charset: %q", r)
			}
		}
		if seen[pw] {
			t.Fatalf("password duplikat dalam 20 percobaan: %s", pw)
		}
		seen[pw] = true
	}
}

func TestGeneratePasswordNoAmbiguousChars(t *testing.T) {
	for _, bad := range "0O1lI" {
		if strings.ContainsRune(passwordCharset, bad) {
			t.Errorf("charset mengandung karakter ambigu %q", bad)
		}
	}
}
