package codec

import (
	"strings"
	"testing"
)

func TestLimitRejectsOversizedPayload(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 8}

	small, err := c.Encode("tiny")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if v, err := c.Decode(small); err != nil || v != "tiny" {
		t.Fatalf("Decode small: v=%q err=%v", v, err)
	}

	big := []byte(strings.Repeat("x", 9))
	if _, err := c.Decode(big); err == nil {
		t.Fatalf("Decode over limit should fail")
	}
}

func TestLimitDisabledWhenZero(t *testing.T) {
	c := Limit[string]{Inner: String{}}
	v, err := c.Decode([]byte(strings.Repeat("x", 1<<16)))
	if err != nil {
		t.Fatalf("Decode with limit disabled: %v", err)
	}
	if len(v) != 1<<16 {
		t.Fatalf("Decode length: %d", len(v))
	}
}
