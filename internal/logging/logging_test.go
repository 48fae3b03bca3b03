package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "termdesk.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)
	Trace("window.open", map[string]interface{}{"id": "notes"})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, stat err = %v", err)
	}
}

func TestTraceWritesJSONLines(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)
	if !TraceEnabled() {
		t.Fatalf("TraceEnabled should report true")
	}
	Trace("window.open", map[string]interface{}{"id": "notes"})
	Trace("window.close", nil)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var got []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry struct {
			Event   string                 `json:"event"`
			Payload map[string]interface{} `json:"payload"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("decode %q: %v", scanner.Text(), err)
		}
		got = append(got, entry.Event)
		if entry.Event == "window.open" && entry.Payload["id"] != "notes" {
			t.Fatalf("payload lost: %+v", entry.Payload)
		}
	}
	if strings.Join(got, ",") != "window.open,window.close" {
		t.Fatalf("events = %v", got)
	}
}

func TestErrorAppends(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("catalog exploded"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "catalog exploded") {
		t.Fatalf("log missing error: %q", data)
	}
}

func TestConfigureBlankResetsDefault(t *testing.T) {
	useTempLog(t)
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("path = %q", Path())
	}
}
