package config

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"fieldcore/internal/infra/kv/memory"
)

func TestInitDefaultsOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := NewSession(memory.New(), zap.NewNop())

	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if s.Theme.Mode != "system" {
		t.Fatalf("expected default theme, got %q", s.Theme.Mode)
	}
	if !s.Notifications.RemindersEnabled || s.Notifications.ReminderHour != 9 {
		t.Fatalf("unexpected notification defaults: %+v", s.Notifications)
	}
	if s.Backup.AutoBackup {
		t.Fatalf("expected auto backup off by default: %+v", s.Backup)
	}
}

func TestInitLoadsStoredPreferences(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	if err := mem.Set(ctx, KeyTheme, `{"mode":"dark"}`); err != nil {
		t.Fatalf("seed theme: %v", err)
	}
	if err := mem.Set(ctx, KeyNotificationSettings, `{"remindersEnabled":false,"overdueEnabled":true,"reminderHour":7}`); err != nil {
		t.Fatalf("seed notifications: %v", err)
	}

	s := NewSession(mem, zap.NewNop())
	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if s.Theme.Mode != "dark" {
		t.Fatalf("expected stored theme, got %q", s.Theme.Mode)
	}
	if s.Notifications.RemindersEnabled || s.Notifications.ReminderHour != 7 {
		t.Fatalf("unexpected notifications: %+v", s.Notifications)
	}
	// Unseeded keys keep their defaults.
	if s.Backup.Frequency != "weekly" {
		t.Fatalf("expected default backup frequency, got %q", s.Backup.Frequency)
	}
}

func TestInitMalformedPreferenceFallsBack(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	if err := mem.Set(ctx, KeyTheme, `{broken`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := NewSession(mem, zap.NewNop())
	if err := s.Init(ctx); err != nil {
		t.Fatalf("expected malformed preference swallowed, got %v", err)
	}
	if s.Theme.Mode != "system" {
		t.Fatalf("expected default theme after decode failure, got %q", s.Theme.Mode)
	}
}

func TestSaveRoundTripsPreferences(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	s := NewSession(mem, zap.NewNop())

	if err := s.SaveTheme(ctx, ThemeConfig{Mode: "dark"}); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	if err := s.SaveBackup(ctx, BackupSettings{AutoBackup: true, Frequency: "daily"}); err != nil {
		t.Fatalf("save backup: %v", err)
	}

	reloaded := NewSession(mem, zap.NewNop())
	if err := reloaded.Init(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Theme.Mode != "dark" {
		t.Fatalf("expected theme persisted, got %q", reloaded.Theme.Mode)
	}
	if !reloaded.Backup.AutoBackup || reloaded.Backup.Frequency != "daily" {
		t.Fatalf("expected backup persisted, got %+v", reloaded.Backup)
	}
}
