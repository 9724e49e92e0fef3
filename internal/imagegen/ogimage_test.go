package imagegen

import (
	"bytes"
	"image/png"
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	data, err := Render(OGImageData{
		Location:    "Wandiligong",
		Temperature: "18C",
		Condition:   "Scattered Showers",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != OGWidth || b.Dy() != OGHeight {
		t.Errorf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), OGWidth, OGHeight)
	}
}

func TestRenderNonASCII(t *testing.T) {
	// Degree signs and emoji must not break rendering, they just drop out.
	if _, err := Render(OGImageData{Location: "Ötztal ⛅", Temperature: "18°", Condition: "Sunny"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestOGImageCache(t *testing.T) {
	cache := NewOGImageCache(50 * time.Millisecond)

	if _, ok := cache.Get(); ok {
		t.Error("empty cache should miss")
	}

	cache.Set([]byte("png-bytes"))
	got, ok := cache.Get()
	if !ok || string(got) != "png-bytes" {
		t.Errorf("cache hit = %q, %v", got, ok)
	}

	time.Sleep(60 * time.Millisecond)
	if _, ok := cache.Get(); ok {
		t.Error("expired entry should miss")
	}
}
