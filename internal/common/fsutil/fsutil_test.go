package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir on this platform: %v", err)
	}
	got, err := ExpandHome("~")
	if err != nil {
		t.Fatalf("expand ~: %v", err)
	}
	if got != home {
		t.Fatalf("got %q, want %q", got, home)
	}
	got, err = ExpandHome("~/models")
	if err != nil {
		t.Fatalf("expand ~/models: %v", err)
	}
	if got != filepath.Join(home, "models") {
		t.Fatalf("got %q", got)
	}
}

func TestExpandHome_Passthrough(t *testing.T) {
	for _, p := range []string{"", "/abs/path", "relative/path"} {
		got, err := ExpandHome(p)
		if err != nil {
			t.Fatalf("expand %q: %v", p, err)
		}
		if got != p {
			t.Fatalf("expand %q = %q", p, got)
		}
	}
}

func TestResolve_MakesAbsolute(t *testing.T) {
	got, err := Resolve("models")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("not absolute: %q", got)
	}
}

func TestPathExists(t *testing.T) {
	d := t.TempDir()
	if !PathExists(d) {
		t.Fatal("temp dir should exist")
	}
	if PathExists(filepath.Join(d, "nope")) {
		t.Fatal("missing path reported as existing")
	}
}
