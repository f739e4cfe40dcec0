package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/clickplay/clickplay/internal/icons"
)

func TestRenderIcons(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")
	files, err := renderIcons(dir, icons.PNG)
	if err != nil {
		t.Fatalf("renderIcons: %v", err)
	}
	if len(files) != 10 {
		t.Fatalf("wrote %d files, want 10", len(files))
	}

	for _, name := range []string{"default-black.png", "play-white.png", "next-black.png"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Errorf("decode %s: %v", name, err)
			continue
		}
		if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
			t.Errorf("%s bounds = %v", name, b)
		}
	}
}

func TestRenderIconsICO(t *testing.T) {
	dir := t.TempDir()
	if _, err := renderIcons(dir, icons.ICO); err != nil {
		t.Fatalf("renderIcons: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "pause-white.ico"))
	if err != nil {
		t.Fatalf("missing pause-white.ico: %v", err)
	}
	if len(data) < 4 || !bytes.Equal(data[:4], []byte{0, 0, 1, 0}) {
		t.Errorf("missing ICO header")
	}
}
