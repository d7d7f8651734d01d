package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/folio/config"
)

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output discarded, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Errorf("Expected no log directory without debug")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(io.Discard)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file with debug")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Errorf("Log output must not share the terminal")
	}

	log.Println("resize 80x24")
	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Expected log file: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("Expected log content")
	}
}

func TestSetupLoggingRotatesLargeFile(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(io.Discard)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file after rotation")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected current and rotated log, got %d entries", len(entries))
	}
	if info, err := os.Stat(logPath); err != nil || info.Size() > maxLogSize {
		t.Errorf("Expected fresh log file after rotation")
	}
}

func TestLoadConfigLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.toml")
	if err := os.WriteFile(path, []byte("fps = 30\n[display]\ncharset = \"blocks\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("FOLIO_FPS", "45")
	t.Setenv("FOLIO_SEED", "9")

	*configFlag = path
	defer func() { *configFlag = "" }()
	if err := flag.Set("seed", "11"); err != nil {
		t.Fatalf("flag set: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.FPS != 45 {
		t.Errorf("Expected env fps over file, got %d", cfg.FPS)
	}
	if cfg.Seed != 11 {
		t.Errorf("Expected flag seed over env, got %d", cfg.Seed)
	}
	if cfg.Display.Charset != "blocks" {
		t.Errorf("Expected file charset, got %q", cfg.Display.Charset)
	}
	if cfg.Display.CellWidth != config.DefaultCellWidth {
		t.Errorf("Expected default cell width, got %v", cfg.Display.CellWidth)
	}
}
