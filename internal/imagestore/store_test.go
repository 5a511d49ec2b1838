package imagestore

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("encoding fixture png: %v", err)
	}
	return buf.Bytes()
}

func TestStore_PutGetRemove(t *testing.T) {
	s := New()
	data := tinyPNG(t)

	if _, ok := s.Get(1); ok {
		t.Error("Get on empty store returned data")
	}

	s.Put(1, data)
	got, ok := s.Get(1)
	if !ok || !bytes.Equal(got, data) {
		t.Errorf("Get(1) = %d bytes, %v; want the stored payload", len(got), ok)
	}

	s.Remove(1)
	if _, ok := s.Get(1); ok {
		t.Error("Get after Remove returned data")
	}
}

func TestDecodable(t *testing.T) {
	if !Decodable(tinyPNG(t)) {
		t.Error("valid png reported undecodable")
	}
	if Decodable([]byte("not an image")) {
		t.Error("garbage bytes reported decodable")
	}
	if Decodable(nil) {
		t.Error("empty payload reported decodable")
	}
}
