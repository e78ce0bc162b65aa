package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/arduano/snake-solver/game"
)

func TestPrettyJSONHandler_NestsGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyJSONHandler(&buf, nil)).With("solver", "spantree").WithGroup("plan")
	log.Info("planned", "len", 12, slog.Group("head", "x", 3), "at", game.Coord{X: 1, Y: 2})

	if !strings.Contains(buf.String(), "\n  \"") {
		t.Fatalf("output is not indented:\n%s", buf.String())
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	if got["msg"] != "planned" || got["level"] != "INFO" || got["solver"] != "spantree" {
		t.Fatalf("top level=%v", got)
	}
	plan, ok := got["plan"].(map[string]any)
	if !ok {
		t.Fatalf("plan group missing: %v", got)
	}
	if plan["len"] != float64(12) || plan["at"] != "(1,2)" {
		t.Fatalf("plan=%v", plan)
	}
	if head, ok := plan["head"].(map[string]any); !ok || head["x"] != float64(3) {
		t.Fatalf("head=%v", plan["head"])
	}
}

func TestPrettyJSONHandler_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info written at warn level: %s", buf.String())
	}
	log.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn missing: %s", buf.String())
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"text", "json", "pretty", ""} {
		var buf bytes.Buffer
		log, err := New(&buf, format, slog.LevelDebug)
		if err != nil {
			t.Fatalf("format=%q: %v", format, err)
		}
		log.Debug("hello")
		if !strings.Contains(buf.String(), "hello") {
			t.Fatalf("format=%q output=%q", format, buf.String())
		}
	}
	if _, err := New(&bytes.Buffer{}, "xml", slog.LevelInfo); err == nil {
		t.Fatalf("unknown format accepted")
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("warn")
	if err != nil || l != slog.LevelWarn {
		t.Fatalf("level=%v err=%v", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("bogus level accepted")
	}
}
