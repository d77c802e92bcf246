package sink

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFilesystemSinkWriteFile(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)

	content := []byte("module Generated.Api exposing (..)\n")
	if err := s.WriteFile(context.Background(), "Generated/Api.elm", content); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "Generated", "Api.elm"))
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("file content = %q, want %q", got, content)
	}
}

func TestFilesystemSinkOverwrites(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)
	ctx := context.Background()

	if err := s.WriteFile(ctx, "Api.elm", []byte("first")); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := s.WriteFile(ctx, "Api.elm", []byte("second")); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "Api.elm"))
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("file content = %q, want second", got)
	}
}

func TestFilesystemSinkLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)

	if err := s.WriteFile(context.Background(), "Api.elm", []byte("x")); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != "Api.elm" {
			t.Errorf("unexpected file left behind: %s", entry.Name())
		}
	}
}

func TestMemorySink(t *testing.T) {
	s := NewMemorySink()
	ctx := context.Background()

	if err := s.WriteFile(ctx, "Api.elm", []byte("content")); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	if got := s.Get("Api.elm"); string(got) != "content" {
		t.Errorf("Get = %q, want content", got)
	}
	if got := s.Get("missing.elm"); got != nil {
		t.Errorf("Get for missing file = %v, want nil", got)
	}
	if paths := s.Paths(); len(paths) != 1 || paths[0] != "Api.elm" {
		t.Errorf("Paths = %v, want [Api.elm]", paths)
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"Api.elm", false},
		{"Generated/Api.elm", false},
		{"", true},
		{"/etc/passwd", true},
		{"../escape.elm", true},
		{"a/../b.elm", true},
		{"./Api.elm", true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}
