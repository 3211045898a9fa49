package media

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding bounded image: %v", err)
	}
	size := img.Bounds().Size()
	return size.X, size.Y
}

func TestBoundImage(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{"large landscape shrinks proportionally", 1000, 500, 500, 250},
		{"large portrait shrinks proportionally", 400, 1600, 125, 500},
		{"square shrinks to the bound", 800, 800, 500, 500},
		{"small image is not upscaled", 120, 80, 120, 80},
		{"exactly at the bound", 500, 500, 500, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounded, err := BoundImage(encodePNG(t, tt.width, tt.height))
			if err != nil {
				t.Fatalf("BoundImage: %v", err)
			}
			gotWidth, gotHeight := decodeSize(t, bounded)
			if gotWidth != tt.wantWidth || gotHeight != tt.wantHeight {
				t.Errorf("got %dx%d, want %dx%d", gotWidth, gotHeight, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestBoundImageRejectsGarbage(t *testing.T) {
	_, err := BoundImage([]byte("not an image"))
	if err == nil {
		t.Fatal("expected undecodable input to be rejected")
	}
	if !errors.Is(err, ErrBadImage) {
		t.Errorf("expected the decode failure to carry ErrBadImage, got %v", err)
	}
}
