package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("expected no log file without -debug")
	}
	if log.Writer() != io.Discard {
		t.Fatalf("log output is %v, expected io.Discard", log.Writer())
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected a log file with -debug")
	}
	defer f.Close()
	defer log.SetOutput(io.Discard)

	log.Println("hello")
	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("log file is empty")
	}
	if log.Writer() == os.Stdout || log.Writer() == os.Stderr {
		t.Fatal("log output went to the terminal")
	}
}

func TestSetupLoggingRotates(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected a log file")
	}
	defer f.Close()
	defer log.SetOutput(io.Discard)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected the active and a rotated log, found %d files", len(entries))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Fatalf("active log not rotated: %d bytes", info.Size())
	}
}
