package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	var out bytes.Buffer
	if err := run(&out); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{"profile_yuki.png", "profile_ren.png", "profile_keiji.png", "ic_message.png"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), out.String())
	}
	for i, name := range want {
		if lines[i] != "Created "+name {
			t.Errorf("line %d = %q, want %q", i, lines[i], "Created "+name)
		}
		if _, err := os.Stat(filepath.Join("icon", name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
