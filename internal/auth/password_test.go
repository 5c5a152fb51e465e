package auth

import (
	"strings"
	"testing"
)

// cheap parameters keep the suite fast; the format and comparison are what is under test
var testHasher = NewHasher(1024, 8, 1)

func TestHashVerifyRoundTrip(t *testing.T) {
	passwords := []string{"admin123", "correct horse battery staple", "ünïcödé", ""}
	for _, password := range passwords {
		credential, err := testHasher.Hash(password)
		if err != nil {
			t.Fatalf("Hash(%q): %v", password, err)
		}
		if strings.Contains(credential, password) && password != "" {
			t.Fatalf("credential contains plaintext: %q", credential)
		}
		if !testHasher.Verify(password, credential) {
			t.Fatalf("Verify(%q) failed on its own hash", password)
		}
	}
}

func TestVerifyRejectsOtherPasswords(t *testing.T) {
	credential, err := testHasher.Hash("student123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	for _, wrong := range []string{"student124", "Student123", "student123 ", ""} {
		if testHasher.Verify(wrong, credential) {
			t.Fatalf("Verify accepted %q", wrong)
		}
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := testHasher.Hash("emp123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := testHasher.Hash("emp123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password are identical")
	}
	if !testHasher.Verify("emp123", first) || !testHasher.Verify("emp123", second) {
		t.Fatal("both credentials should verify")
	}

	_, salt, _ := strings.Cut(first, ".")
	if len(salt) != 2*saltBytes {
		t.Fatalf("expected %d hex salt chars, got %d", 2*saltBytes, len(salt))
	}
}

func TestVerifyMalformedCredential(t *testing.T) {
	valid, err := testHasher.Hash("pw")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	key, salt, _ := strings.Cut(valid, ".")

	cases := map[string]string{
		"empty":          "",
		"no separator":   key,
		"empty salt":     key + ".",
		"extra segment":  valid + ".x",
		"non-hex key":    "zz" + key[2:] + "." + salt,
		"truncated key":  key[:10] + "." + salt,
		"plaintext only": "pw",
	}
	for name, credential := range cases {
		t.Run(name, func(t *testing.T) {
			if testHasher.Verify("pw", credential) {
				t.Fatalf("malformed credential %q verified", credential)
			}
		})
	}
}

func TestHashersWithDifferentCostDisagree(t *testing.T) {
	credential, err := testHasher.Hash("pw")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if NewHasher(2048, 8, 1).Verify("pw", credential) {
		t.Fatal("credential verified under different scrypt parameters")
	}
}
