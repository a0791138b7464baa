package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScanFlags(t *testing.T) {
	shorthands := map[string]string{
		"algorithm":   "a",
		"detect-type": "t",
		"workers":     "w",
		"iters":       "i",
		"report":      "r",
		"lang":        "l",
	}
	for name, short := range shorthands {
		flag := scanCmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("Missing flag --%s", name)
			continue
		}
		if flag.Shorthand != short {
			t.Errorf("--%s shorthand = %q, want %q", name, flag.Shorthand, short)
		}
	}
}

func TestScanCommand(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	if err := os.MkdirAll(data, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"one", "two"} {
		if err := os.WriteFile(filepath.Join(data, name), []byte("payload"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	report := filepath.Join(dir, "scan.json")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"scan", data, "-a", "md5", "-w", "1", "-r", report, "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(report); err != nil {
		t.Errorf("Expected report at %s: %v", report, err)
	}
	if !strings.Contains(out.String(), "Redundancy files     : 1") {
		t.Errorf("Unexpected console output:\n%s", out.String())
	}
}

func TestScanCommand_ClampedItersIsLogged(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	if err := os.MkdirAll(data, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(data, "one"), []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}
	logFile := filepath.Join(dir, "scan.log")

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"scan", data, "-i", "5", "-r", filepath.Join(dir, "scan.json"),
		"--log-level", "warn", "--log-file", logFile})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(content), "progress interval 5 out of range, using 10") {
		t.Errorf("Expected the clamp warning in the log file, got:\n%s", content)
	}
}

func TestScanCommand_NoArgs(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"scan"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected an error without folders")
	}
}
