package benchmark

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write suite file: %v", err)
	}
	return path
}

func TestLoadSuiteConfig(t *testing.T) {
	path := writeSuite(t, `
frameworks:
  - gin
  - echo
addr: 127.0.0.1:8080
duration_seconds: 10
connections: 100
threads: 4
loadgen: builtin
`)

	sc, err := LoadSuiteConfig(path)
	if err != nil {
		t.Fatalf("LoadSuiteConfig failed: %v", err)
	}

	if len(sc.Frameworks) != 2 || sc.Frameworks[0] != "gin" || sc.Frameworks[1] != "echo" {
		t.Errorf("Frameworks = %v", sc.Frameworks)
	}
	if sc.Addr != "127.0.0.1:8080" {
		t.Errorf("Addr = %q", sc.Addr)
	}
	if sc.DurationSec != 10 || sc.Connections != 100 || sc.Threads != 4 {
		t.Errorf("numbers = %d/%d/%d", sc.DurationSec, sc.Connections, sc.Threads)
	}
	if sc.LoadGen != "builtin" {
		t.Errorf("LoadGen = %q", sc.LoadGen)
	}
}

func TestLoadSuiteConfigUnknownFramework(t *testing.T) {
	path := writeSuite(t, "frameworks: [warp]\n")

	_, err := LoadSuiteConfig(path)
	if err == nil || !strings.Contains(err.Error(), "unknown framework") {
		t.Errorf("expected unknown framework error, got %v", err)
	}
}

func TestLoadSuiteConfigBadLoadGen(t *testing.T) {
	path := writeSuite(t, "loadgen: cannon\n")

	_, err := LoadSuiteConfig(path)
	if err == nil || !strings.Contains(err.Error(), "loadgen") {
		t.Errorf("expected loadgen error, got %v", err)
	}
}

func TestLoadSuiteConfigInvalidYAML(t *testing.T) {
	path := writeSuite(t, "frameworks: [gin\n")

	if _, err := LoadSuiteConfig(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestSuiteConfigApply(t *testing.T) {
	cfg := Config{
		Addr:        DefaultAddr,
		Duration:    30 * time.Second,
		Connections: 500,
		Threads:     16,
		LoadGen:     "wrk",
	}
	sc := &SuiteConfig{
		Frameworks:  []string{"chi"},
		DurationSec: 5,
		LoadGen:     "builtin",
	}
	sc.Apply(&cfg)

	if len(cfg.Frameworks) != 1 || cfg.Frameworks[0] != "chi" {
		t.Errorf("Frameworks = %v", cfg.Frameworks)
	}
	if cfg.Duration != 5*time.Second {
		t.Errorf("Duration = %v", cfg.Duration)
	}
	if cfg.LoadGen != "builtin" {
		t.Errorf("LoadGen = %q", cfg.LoadGen)
	}
	// Fields the suite file left unset keep their flag values.
	if cfg.Connections != 500 || cfg.Threads != 16 || cfg.Addr != DefaultAddr {
		t.Errorf("unset fields changed: %+v", cfg)
	}
}
