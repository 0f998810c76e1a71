package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "good.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "empty.txt"), nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	v := NewValidator(dir)
	results := v.Check([]string{"good.json", "empty.txt", "missing.json"})

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Missing != "" || !results[0].Exists {
		t.Errorf("good.json should pass: %+v", results[0])
	}
	if results[1].Missing != "empty file" {
		t.Errorf("empty.txt: %+v", results[1])
	}
	if results[2].Missing != "not found" {
		t.Errorf("missing.json: %+v", results[2])
	}
}

func TestRequireAll(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	v := NewValidator(dir)
	if err := v.RequireAll([]string{"a.txt"}); err != nil {
		t.Errorf("RequireAll should pass: %v", err)
	}

	err := v.RequireAll([]string{"a.txt", "b.txt"})
	if err == nil {
		t.Fatal("RequireAll should fail for missing file")
	}
	if !strings.Contains(err.Error(), "b.txt") {
		t.Errorf("error should name the missing file: %v", err)
	}
}
