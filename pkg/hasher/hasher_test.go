package hasher

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"sha1", SHA1, false},
		{"MD5", MD5, false},
		{" xxhash ", XXHash, false},
		{"BLAKE3", BLAKE3, false},
		{"", SHA1, false},
		{"sha256", "", true},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAlgorithm(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAlgorithm_BlockSize(t *testing.T) {
	if got := SHA1.BlockSize(); got != 64*1024 {
		t.Errorf("SHA1.BlockSize() = %d, want %d", got, 64*1024)
	}
	if got := MD5.BlockSize(); got != 64*1024 {
		t.Errorf("MD5.BlockSize() = %d, want %d", got, 64*1024)
	}
	if got := XXHash.BlockSize(); got != 32*1024 {
		t.Errorf("XXHash.BlockSize() = %d, want %d", got, 32*1024)
	}
	if got := BLAKE3.BlockSize(); got != 64*1024 {
		t.Errorf("BLAKE3.BlockSize() = %d, want %d", got, 64*1024)
	}
}

func TestProcessor_KnownDigests(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/abc.txt", []byte("abc"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := map[Algorithm]string{
		SHA1:   "a9993e364706816aba3e25717850c26c9cd0d89d",
		MD5:    "900150983cd24fb0d6963f7d28e17f72",
		BLAKE3: "6437b3ac38465133ffb63b75273a8db548c558465d79db03fd359c6cd5bd9d85",
	}

	for alg, want := range tests {
		sum, err := NewProcessor(alg, false).Process(fs, "/abc.txt")
		if err != nil {
			t.Fatalf("Process(%s) error = %v", alg, err)
		}
		if sum.Hash != want {
			t.Errorf("Process(%s) hash = %s, want %s", alg, sum.Hash, want)
		}
		if sum.FileType != "" {
			t.Errorf("Expected no file type without detection, got %q", sum.FileType)
		}
	}
}

func TestProcessor_LargeFileMatchesOneShotDigest(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "large.bin")

	content := bytes.Repeat([]byte("0123456789abcdef"), 20000)
	if err := os.WriteFile(testFile, content, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	sha := sha1.Sum(content)
	md := md5.Sum(content)

	sum, err := NewProcessor(SHA1, true).Process(afero.NewOsFs(), testFile)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if sum.Hash != hex.EncodeToString(sha[:]) {
		t.Errorf("sha1 mismatch: %s", sum.Hash)
	}

	sum, err = NewProcessor(MD5, false).Process(afero.NewOsFs(), testFile)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if sum.Hash != hex.EncodeToString(md[:]) {
		t.Errorf("md5 mismatch: %s", sum.Hash)
	}
}

func TestProcessor_ExactlyHeaderSize(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := bytes.Repeat([]byte{'x'}, HeaderSize)
	if err := afero.WriteFile(fs, "/header.bin", content, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	sum, err := NewProcessor(SHA1, false).Process(fs, "/header.bin")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := sha1.Sum(content)
	if sum.Hash != hex.EncodeToString(want[:]) {
		t.Errorf("hash = %s, want %s", sum.Hash, hex.EncodeToString(want[:]))
	}
}

func TestProcessor_XXHashConsistent(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/a", []byte("same content"), 0644)
	afero.WriteFile(fs, "/b", []byte("same content"), 0644)
	afero.WriteFile(fs, "/c", []byte("other content"), 0644)

	p := NewProcessor(XXHash, false)
	a, _ := p.Process(fs, "/a")
	b, _ := p.Process(fs, "/b")
	c, _ := p.Process(fs, "/c")

	if a.Hash == "" || a.Hash != b.Hash {
		t.Errorf("Expected equal hashes for equal content, got %q and %q", a.Hash, b.Hash)
	}
	if a.Hash == c.Hash {
		t.Error("Expected different hashes for different content")
	}
}

func TestProcessor_DetectType(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/img.png":  "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR",
		"/img.jpg":  "\xff\xd8\xff\xe0\x00\x10JFIF",
		"/doc.pdf":  "%PDF-1.4",
		"/note.txt": "random content",
	}
	want := map[string]string{
		"/img.png":  "image/png",
		"/img.jpg":  "image/jpeg",
		"/doc.pdf":  "application/pdf",
		"/note.txt": UnknownFileType,
	}

	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	p := NewProcessor(SHA1, true)
	for name, expected := range want {
		sum, err := p.Process(fs, name)
		if err != nil {
			t.Fatalf("Process(%s) error = %v", name, err)
		}
		if sum.FileType != expected {
			t.Errorf("Process(%s) type = %q, want %q", name, sum.FileType, expected)
		}
	}
}

func TestProcessor_MissingFile(t *testing.T) {
	_, err := NewProcessor(SHA1, true).Process(afero.NewMemMapFs(), "/non/existent/file")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDetectType_Empty(t *testing.T) {
	if got := DetectType(nil); got != "" {
		t.Errorf("DetectType(nil) = %q, want empty", got)
	}
}
