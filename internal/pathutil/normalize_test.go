package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory available: %v", err)
	}
	got, err := Normalize("~")
	if err != nil {
		t.Fatalf("Normalize(~) error: %v", err)
	}
	if got != home {
		t.Errorf("Normalize(~) = %q, want %q", got, home)
	}
}

func TestNormalizeDot(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Skipf("no working directory available: %v", err)
	}
	got, err := Normalize(".")
	if err != nil {
		t.Fatalf("Normalize(.) error: %v", err)
	}
	if got != wd {
		t.Errorf("Normalize(.) = %q, want %q", got, wd)
	}
}

func TestNormalizeResolvesSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got, err := Normalize(link)
	if err != nil {
		t.Fatalf("Normalize(link) error: %v", err)
	}
	wantReal, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatalf("EvalSymlinks(target): %v", err)
	}
	if got != wantReal {
		t.Errorf("Normalize(link) = %q, want %q", got, wantReal)
	}
}

func TestNormalizeRelativePath(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "child")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Skipf("no working directory available: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Skipf("cannot chdir: %v", err)
	}
	defer os.Chdir(wd)

	got, err := Normalize("child")
	if err != nil {
		t.Fatalf("Normalize(child) error: %v", err)
	}
	wantReal, err := filepath.EvalSymlinks(sub)
	if err != nil {
		t.Fatalf("EvalSymlinks(sub): %v", err)
	}
	if got != wantReal {
		t.Errorf("Normalize(child) = %q, want %q", got, wantReal)
	}
}
