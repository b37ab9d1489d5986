package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hy4ri/tasklist-tui/internal/config"
)

func TestNewWritesLogfmt(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ReportTimestamp = false

	New(&buf, opts).Debug("screen change", "from", "main", "to", "add")

	out := buf.String()
	for _, want := range []string{"level=debug", "prefix=tasklist", `msg="screen change"`, "from=main", "to=add"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Level = log.WarnLevel

	New(&buf, opts).Info("ignored")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered, got %q", buf.String())
	}
}

func TestFromConfigDisabled(t *testing.T) {
	logger, closer, err := FromConfig(config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if logger == nil || closer == nil {
		t.Fatal("expected usable logger and closer")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("close: %v", err)
	}

	if _, _, err := FromConfig(nil); err != nil {
		t.Errorf("nil config: %v", err)
	}
}

func TestFromConfigWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	cfg := config.DefaultConfig()
	cfg.Log.Debug = true
	cfg.Log.File = path
	cfg.Log.Level = "info"

	logger, closer, err := FromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hidden")
	logger.Info("visible")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "visible") {
		t.Errorf("unexpected log contents %q", data)
	}
}

func TestFromConfigInvalidLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Debug = true
	cfg.Log.File = filepath.Join(t.TempDir(), "debug.log")
	cfg.Log.Level = "loud"

	if _, _, err := FromConfig(cfg); err == nil {
		t.Error("expected error for unknown level")
	}
}
