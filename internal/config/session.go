// Package config holds the app session: user preferences persisted through
// the same key-value adapter as the entity collections, plus environment
// bootstrap for selecting a storage driver.
package config

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"fieldcore/internal/kv"
	"fieldcore/pkg/domain"
)

// Preference storage keys. They live beside the collection keys in the same
// adapter but hold single JSON objects, not arrays.
const (
	KeyTheme                = "theme"
	KeyNotificationSettings = "notificationSettings"
	KeyBackupSettings       = "backupSettings"
)

// ThemeConfig captures the display preference.
type ThemeConfig struct {
	Mode string `json:"mode"`
}

// NotificationSettings captures local reminder preferences. Delivery is the
// presentation layer's concern; this core only persists the choices.
type NotificationSettings struct {
	RemindersEnabled bool `json:"remindersEnabled"`
	OverdueEnabled   bool `json:"overdueEnabled"`
	ReminderHour     int  `json:"reminderHour"`
}

// BackupSettings captures backup preferences.
type BackupSettings struct {
	AutoBackup bool   `json:"autoBackup"`
	Frequency  string `json:"frequency"`
	LastBackup string `json:"lastBackup,omitempty"`
}

// DefaultTheme is what a fresh install sees.
func DefaultTheme() ThemeConfig { return ThemeConfig{Mode: "system"} }

// DefaultNotificationSettings enables reminders at 09:00.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{RemindersEnabled: true, OverdueEnabled: true, ReminderHour: 9}
}

// DefaultBackupSettings disables automatic backups.
func DefaultBackupSettings() BackupSettings {
	return BackupSettings{AutoBackup: false, Frequency: "weekly"}
}

// Session is the explicit app-session object: preferences loaded once at
// startup from the adapter, saved back on change. There is no teardown; the
// adapter owns all resources.
type Session struct {
	store  kv.Store
	logger *zap.Logger

	Theme         ThemeConfig
	Notifications NotificationSettings
	Backup        BackupSettings
}

// NewSession constructs an unloaded session with defaults in place. Call
// Init before reading preferences.
func NewSession(store kv.Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		store:         store,
		logger:        logger,
		Theme:         DefaultTheme(),
		Notifications: DefaultNotificationSettings(),
		Backup:        DefaultBackupSettings(),
	}
}

// Init loads every preference key. Missing or malformed payloads fall back
// to defaults; adapter read failures surface.
func (s *Session) Init(ctx context.Context) error {
	if err := s.loadPref(ctx, KeyTheme, &s.Theme, DefaultTheme()); err != nil {
		return err
	}
	if err := s.loadPref(ctx, KeyNotificationSettings, &s.Notifications, DefaultNotificationSettings()); err != nil {
		return err
	}
	return s.loadPref(ctx, KeyBackupSettings, &s.Backup, DefaultBackupSettings())
}

func (s *Session) loadPref(ctx context.Context, key string, dst any, fallback any) error {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return domain.StorageError{Op: "get", Key: key, Err: err}
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn("malformed preference payload, using defaults",
			zap.String("key", key),
			zap.Error(domain.DecodeError{Key: key, Err: err}))
		assign(dst, fallback)
	}
	return nil
}

// assign copies fallback into dst through JSON. Both sides are small flat
// structs; this keeps loadPref generic without reflection imports.
func assign(dst, fallback any) {
	b, err := json.Marshal(fallback)
	if err != nil {
		return
	}
	_ = json.Unmarshal(b, dst)
}

// SaveTheme persists the theme preference.
func (s *Session) SaveTheme(ctx context.Context, t ThemeConfig) error {
	if err := s.savePref(ctx, KeyTheme, t); err != nil {
		return err
	}
	s.Theme = t
	return nil
}

// SaveNotifications persists the notification preference.
func (s *Session) SaveNotifications(ctx context.Context, n NotificationSettings) error {
	if err := s.savePref(ctx, KeyNotificationSettings, n); err != nil {
		return err
	}
	s.Notifications = n
	return nil
}

// SaveBackup persists the backup preference.
func (s *Session) SaveBackup(ctx context.Context, b BackupSettings) error {
	if err := s.savePref(ctx, KeyBackupSettings, b); err != nil {
		return err
	}
	s.Backup = b
	return nil
}

func (s *Session) savePref(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode preference %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, string(b)); err != nil {
		return domain.StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}
