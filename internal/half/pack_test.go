package half

import (
	"bytes"
	"testing"
)

func TestPutFloat16s_LittleEndian(t *testing.T) {
	dst := make([]byte, 6)
	PutFloat16s(dst, []float32{1, -2, 0.5})

	want := []byte{0x00, 0x3C, 0x00, 0xC0, 0x00, 0x38}
	if !bytes.Equal(dst, want) {
		t.Fatalf("got=% x want=% x", dst, want)
	}

	got := make([]float32, 3)
	Float16s(got, dst)
	if got[0] != 1 || got[1] != -2 || got[2] != 0.5 {
		t.Fatalf("unexpected: %v", got)
	}
}

func TestPutBFloat16s_LittleEndian(t *testing.T) {
	dst := make([]byte, 4)
	PutBFloat16s(dst, []float32{1, -2})

	want := []byte{0x80, 0x3F, 0x00, 0xC0}
	if !bytes.Equal(dst, want) {
		t.Fatalf("got=% x want=% x", dst, want)
	}

	got := make([]float32, 2)
	BFloat16s(got, dst)
	if got[0] != 1 || got[1] != -2 {
		t.Fatalf("unexpected: %v", got)
	}
}

func TestPack_Empty(t *testing.T) {
	PutFloat16s(nil, nil)
	PutBFloat16s(nil, nil)
	Float16s(nil, nil)
	BFloat16s(nil, nil)
}
