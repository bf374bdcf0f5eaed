package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// useTempLogPath points the logger at a throwaway file for the duration
// of the test.
func useTempLogPath(t *testing.T) string {
	t.Helper()
	resetForTest()
	tmpDir := t.TempDir()
	orig := getLogPath
	logPath := filepath.Join(tmpDir, LogDirName, LogFileName)
	getLogPath = func() (string, error) { return logPath, nil }
	t.Cleanup(func() {
		getLogPath = orig
		Close()
		resetForTest()
	})
	return logPath
}

func TestInitDisabledIsNoOp(t *testing.T) {
	resetForTest()
	if err := Init(false); err != nil {
		t.Fatalf("Init(false): %v", err)
	}
	if Enabled() {
		t.Fatal("Enabled() should be false")
	}
	// Must not panic or write anywhere.
	Log("refresh failed")
	Logf("accept paper %d: %v", 7, os.ErrDeadlineExceeded)
}

func TestInitEnabledWritesLogFile(t *testing.T) {
	logPath := useTempLogPath(t)

	if err := Init(true); err != nil {
		t.Fatalf("Init(true): %v", err)
	}
	if !Enabled() {
		t.Fatal("Enabled() should be true")
	}

	Log("refresh: 3 pending papers")
	Logf("accept paper %d ok=%v", 42, true)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	for _, want := range []string{"debug log started", "refresh: 3 pending papers", "accept paper 42 ok=true"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("log file missing %q", want)
		}
	}
}

func TestInitTruncatesPreviousRun(t *testing.T) {
	logPath := useTempLogPath(t)

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(logPath, []byte("stale entries from last run\n"), 0600); err != nil {
		t.Fatalf("seed log: %v", err)
	}

	if err := Init(true); err != nil {
		t.Fatalf("Init(true): %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), "stale entries") {
		t.Error("previous run's log should have been truncated")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	useTempLogPath(t)
	if err := Init(true); err != nil {
		t.Fatalf("Init(true): %v", err)
	}
	Close()
	Close()
}

func TestGetLogPathSuffix(t *testing.T) {
	path, err := GetLogPath()
	if err != nil {
		t.Fatalf("GetLogPath: %v", err)
	}
	want := filepath.Join(LogDirName, LogFileName)
	if !strings.HasSuffix(path, want) {
		t.Errorf("GetLogPath() = %q, want suffix %q", path, want)
	}
}

// resetForTest resets the package state for testing.
func resetForTest() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
	logger = nil
}
