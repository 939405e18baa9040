package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.png", "notes.txt", "c.PNG"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	images, err := listImages(dir)
	if err != nil {
		t.Fatalf("listImages() error = %v", err)
	}

	want := []string{"a.png", "b.png"}
	if len(images) != len(want) {
		t.Fatalf("listImages() = %v, want %v", images, want)
	}
	for i := range want {
		if images[i] != want[i] {
			t.Errorf("images[%d] = %q, want %q", i, images[i], want[i])
		}
	}
}

func TestListImagesMissingDir(t *testing.T) {
	if _, err := listImages(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("listImages(missing) error = nil, want error")
	}
}

func TestImageListModelNavigation(t *testing.T) {
	m := newImageListModel("out", []string{"a.png", "b.png", "c.png"})

	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.cursor)
	}
	if m.selected != "" {
		t.Fatalf("initial selection = %q, want empty", m.selected)
	}
	if view := m.View(); view == "" {
		t.Error("View() returned empty string")
	}
}
