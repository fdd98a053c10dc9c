package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	log, err := New("warn", false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Core().Enabled(zap.InfoLevel) {
		t.Fatal("info enabled at warn level")
	}
	if !log.Core().Enabled(zap.ErrorLevel) {
		t.Fatal("error disabled at warn level")
	}

	dev, err := New("debug", true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !dev.Core().Enabled(zap.DebugLevel) {
		t.Fatal("debug disabled in development logger")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("loud", false); err == nil {
		t.Fatal("unknown level accepted")
	}
}
