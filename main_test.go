package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_CompressThenDecompress(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	data := []byte(strings.Repeat("round and round the container goes. ", 30))
	if err := os.WriteFile(src, data, 0644); err != nil {
		t.Fatal(err)
	}
	if code := run([]string{"lzh", "--compress", "--window", "512", "--delete", src}); code != 0 {
		t.Fatalf("compress exit code %d", code)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("input not deleted: %v", err)
	}
	if code := run([]string{"lzh", "--decompress", src + ".lzh"}); code != 0 {
		t.Fatalf("decompress exit code %d", code)
	}
	got, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("CLI round-trip mismatch")
	}
}

func TestRun_Errors(t *testing.T) {
	cases := map[string][]string{
		"no-args":       {"lzh"},
		"two-commands":  {"lzh", "--compress", "--decompress", "x"},
		"no-file":       {"lzh", "--compress"},
		"missing-file":  {"lzh", "--compress", filepath.Join(t.TempDir(), "absent")},
		"bad-algorithm": {"lzh", "--benchmark", "--algorithm", "lzma", "main.go"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if code := run(args); code == 0 {
				t.Fatal("expected non-zero exit code")
			}
		})
	}
}

func TestSplitFiles(t *testing.T) {
	got := splitFiles([]string{"a.txt, b.txt", "c.txt", ""})
	want := []string{"a.txt", "b.txt", "c.txt"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("got %v want %v", got, want)
	}
}
