package main

import (
	"os"
	"path/filepath"
	"testing"

	"reso/internal/render"
)

func writeBoard(t *testing.T, path, text string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunKeepsBoardsWithSharedNamesApart(t *testing.T) {
	root := t.TempDir()
	chain := filepath.Join(root, "a", "x.txt")
	swap := filepath.Join(root, "b", "x.txt")
	writeBoard(t, chain, "Rior\n")
	writeBoard(t, swap, "RRRRR\ni...O\no...I\nbbbbb\n")

	out := filepath.Join(root, "out")
	opts := options{ticks: 3, out: out, format: render.FormatPNG, text: true}
	first := run(job{index: 0, path: chain}, opts)
	second := run(job{index: 1, path: swap}, opts)
	for _, res := range []runResult{first, second} {
		if res.err != nil {
			t.Fatalf("%s: %v", res.path, res.err)
		}
	}
	if first.settled != 1 {
		t.Fatalf("chain settled at %d, expected 1", first.settled)
	}
	if second.settled != -1 {
		t.Fatalf("oscillator reported settled at %d", second.settled)
	}

	dirA, dirB := boardDir(out, 0, "x"), boardDir(out, 1, "x")
	if dirA == dirB {
		t.Fatalf("boards share output dir %s", dirA)
	}
	for _, dir := range []string{dirA, dirB} {
		for _, name := range []string{"x_0000.png", "x_0003.png"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				t.Fatalf("missing frame: %v", err)
			}
		}
	}

	gotA, err := os.ReadFile(filepath.Join(dirA, "x.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(gotA) != "RIOR\n" {
		t.Fatalf("chain final state = %q", gotA)
	}
	gotB, err := os.ReadFile(filepath.Join(dirB, "x.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(gotB) != "rrrrr\nI...o\nO...i\nBBBBB\n" {
		t.Fatalf("oscillator final state = %q", gotB)
	}
}
