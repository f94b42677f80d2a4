package testing

import (
	"bytes"
	stdtesting "testing"
)

func TestTestKey(t *stdtesting.T) {
	if len(TestKey()) != 32 {
		t.Errorf("TestKey length = %d, want 32", len(TestKey()))
	}
}

func TestTestEncryptor(t *stdtesting.T) {
	enc := TestEncryptor()

	ciphertext, err := enc.Encrypt([]byte("x"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	plaintext, err := enc.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(plaintext, []byte("x")) {
		t.Errorf("round trip = %q", plaintext)
	}
}

func TestSamples(t *stdtesting.T) {
	if SampleFile().Name != "secret.txt" {
		t.Error("SampleFile should carry a filename")
	}
	if SampleMap().Len() != 2 {
		t.Error("SampleMap should have two entries")
	}
	if SampleSet().Len() != 3 {
		t.Error("SampleSet should have three elements")
	}
}
