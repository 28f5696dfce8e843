package walker

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("int x;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverOrderAndFilters(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "zeta.c"))
	writeFile(t, filepath.Join(root, "sub", "alpha.c"))
	writeFile(t, filepath.Join(root, "sub", "notes.txt"))
	writeFile(t, filepath.Join(root, ".hidden", "a.c"))
	writeFile(t, filepath.Join(root, "__MACOSX", "b.c"))
	writeFile(t, filepath.Join(root, "sub", ".secret.c"))
	writeFile(t, filepath.Join(root, "util.h"))

	got, err := Discover(root, []string{".c", ".h"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"sub/alpha.c", "util.h", "zeta.c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Discover = %v, want %v", got, want)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope"), []string{".c"}); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestMirrorRel(t *testing.T) {
	cases := map[string]string{
		"main.c":        "main.py",
		"sub/dir/a.tsx": "sub/dir/a.py",
	}
	for in, want := range cases {
		if got := MirrorRel(in, ".py"); got != want {
			t.Errorf("MirrorRel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTargetPathMirrorsStructure(t *testing.T) {
	target := t.TempDir()
	abs, err := TargetPath(target, "sub/dir/alpha.c", ".py")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(target, "sub", "dir", "alpha.py")
	if abs != want {
		t.Fatalf("TargetPath = %s, want %s", abs, want)
	}
	if fi, err := os.Stat(filepath.Dir(abs)); err != nil || !fi.IsDir() {
		t.Fatalf("parent directory not created: %v", err)
	}
}

func TestSanitizeRemovesMetadata(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "__MACOSX", "junk.c"))
	writeFile(t, filepath.Join(root, "sub", "._resource"))
	writeFile(t, filepath.Join(root, "sub", "keep.c"))

	Sanitize(root, nil)

	if _, err := os.Stat(filepath.Join(root, "__MACOSX")); !os.IsNotExist(err) {
		t.Fatalf("__MACOSX still present: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "sub", "._resource")); !os.IsNotExist(err) {
		t.Fatalf("resource fork still present: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "sub", "keep.c")); err != nil {
		t.Fatalf("regular file removed: %v", err)
	}
}
