package fonts

import (
	"encoding/base64"
	"testing"
)

func TestRegular(t *testing.T) {
	f, err := Regular()
	if err != nil {
		t.Fatalf("Regular() error: %v", err)
	}
	g, _ := Regular()
	if f != g {
		t.Error("Regular() should parse once")
	}
}

func TestCacheReusesFaces(t *testing.T) {
	var c Cache
	a, err := c.Face(12)
	if err != nil {
		t.Fatalf("Face() error: %v", err)
	}
	b, _ := c.Face(12.1)
	if a != b {
		t.Error("sizes within a quarter pixel should share a face")
	}
	d, _ := c.Face(24)
	if a == d {
		t.Error("different sizes should get different faces")
	}
}

func TestAdvance(t *testing.T) {
	face, err := Face(20)
	if err != nil {
		t.Fatal(err)
	}
	short := Advance(face, "1")
	long := Advance(face, "1000")
	if short <= 0 || long <= short {
		t.Errorf("Advance() short=%v long=%v", short, long)
	}
}

func TestTTFBase64(t *testing.T) {
	data, err := base64.StdEncoding.DecodeString(TTFBase64())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(data) != len(TTF()) {
		t.Errorf("decoded length = %d, want %d", len(data), len(TTF()))
	}
}
