package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func initFileLogger(t *testing.T, level, path string) {
	t.Helper()

	cfg := FileConfig{
		Path:       path,
		MaxSizeMB:  10,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   false,
	}
	if err := InitWithFileConfig(level, cfg, false); err != nil {
		t.Fatalf("InitWithFileConfig() error: %v", err)
	}
}

func TestLNopBeforeInit(t *testing.T) {
	prev := Log
	Log = nil
	defer func() { Log = prev }()

	// Must not panic without setup.
	L().Info("before init")
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			initFileLogger(t, tt.level, logFile)

			L().Debug("debug message")
			L().Info("info message")
			L().Warn("warn message")
			L().Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("ReadFile() error: %v", err)
			}

			for _, exp := range tt.expected {
				if !strings.Contains(string(content), exp) {
					t.Errorf("log output missing %s at level %s", exp, tt.level)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(string(content), exc) {
					t.Errorf("log output contains %s at level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "test.log")

	// 1MB is the smallest size lumberjack rotates at.
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
		Compress:   false,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("InitWithFileConfig() error: %v", err)
	}
	defer Sync()

	// Write well past the size limit to force at least one rotation.
	longMessage := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		L().Info(longMessage)
	}
	Sync()

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		t.Fatal("main log file does not exist")
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}

	logCount := 0
	for _, f := range files {
		if strings.HasPrefix(f.Name(), "test") && strings.Contains(f.Name(), ".log") {
			logCount++
		}
	}
	if logCount < 2 {
		t.Errorf("found %d log files, want at least 2 after rotation", logCount)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	if cfg.Path != "/tmp/test.log" {
		t.Errorf("Path = %s, want /tmp/test.log", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 {
		t.Errorf("MaxSizeMB = %d, want 50", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("MaxBackups = %d, want 3", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 7 {
		t.Errorf("MaxAgeDays = %d, want 7", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("Compress = false, want true")
	}
}
