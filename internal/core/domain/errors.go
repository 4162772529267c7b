package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrWatchRootNotFound is returned when the directory to watch does not exist.
	ErrWatchRootNotFound = zerr.New("watch root does not exist")

	// ErrWatchRootNotDir is returned when the watch root is not a directory.
	ErrWatchRootNotDir = zerr.New("watch root is not a directory")

	// ErrWatcherCreateFailed is returned when the native file watcher cannot be created.
	ErrWatcherCreateFailed = zerr.New("failed to create file watcher")

	// ErrWatchPathFailed is returned when a directory cannot be attached to the file watcher.
	ErrWatchPathFailed = zerr.New("failed to watch path")

	// ErrWatchEventFailed is returned for a transient error reported by the file watcher.
	ErrWatchEventFailed = zerr.New("file watcher reported an error")

	// ErrChannelDisconnected is returned when the file watcher stops delivering batches unexpectedly.
	ErrChannelDisconnected = zerr.New("file watcher channel disconnected")

	// ErrNoSubscribers is returned when a notification is published with nobody listening.
	ErrNoSubscribers = zerr.New("no subscribers attached")

	// ErrEmitFailed is returned when a notification cannot be delivered to a consumer.
	ErrEmitFailed = zerr.New("failed to emit notification")

	// ErrSessionNotRunning is returned when a session operation requires an active session.
	ErrSessionNotRunning = zerr.New("watch session is not running")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when the config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrBasePathNotFound is returned when a base path does not exist.
	ErrBasePathNotFound = zerr.New("base path does not exist")

	// ErrBasePathNotDir is returned when a base path is not a directory.
	ErrBasePathNotDir = zerr.New("base path is not a directory")

	// ErrProjectNotFound is returned when a project has no wbs.yaml.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrInvalidProjectID is returned when a project id is empty or escapes the projects directory.
	ErrInvalidProjectID = zerr.New("invalid project id")

	// ErrWBSReadFailed is returned when a wbs.yaml file cannot be read.
	ErrWBSReadFailed = zerr.New("failed to read wbs file")

	// ErrWBSParseFailed is returned when a wbs.yaml file cannot be parsed.
	ErrWBSParseFailed = zerr.New("failed to parse wbs file")

	// ErrWBSWriteFailed is returned when a wbs.yaml file cannot be written.
	ErrWBSWriteFailed = zerr.New("failed to write wbs file")

	// ErrRevisionMismatch is returned when a conditional write targets a stale revision.
	ErrRevisionMismatch = zerr.New("wbs file was modified concurrently")

	// ErrInitFailed is returned when the workspace directories cannot be created.
	ErrInitFailed = zerr.New("failed to initialize workspace")

	// ErrInvalidSettingsType is returned when a settings type is not a plain name.
	ErrInvalidSettingsType = zerr.New("invalid settings type")

	// ErrSettingsNotFound is returned when a settings file does not exist.
	ErrSettingsNotFound = zerr.New("settings not found")

	// ErrSettingsReadFailed is returned when a settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when a settings file is not valid JSON.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrWatchSessionEnded is returned when a foreground watch session exits without being stopped.
	ErrWatchSessionEnded = zerr.New("watch session ended unexpectedly")

	// ErrInvalidOutputMode is returned when the output flag names an unknown renderer.
	ErrInvalidOutputMode = zerr.New("invalid output mode")

	// ErrServerFailed is returned when the HTTP server stops with an error.
	ErrServerFailed = zerr.New("server failed")
)

// HasKind reports whether err is, or was built from, the sentinel kind.
// zerr.With copies its receiver, so errors.Is alone does not see sentinels
// that carry metadata; the message is compared instead.
func HasKind(err, kind error) bool {
	if err == nil || kind == nil {
		return false
	}
	if errors.Is(err, kind) {
		return true
	}

	want := kind.Error()
	for e := err; e != nil; e = errors.Unwrap(e) {
		if m, ok := e.(interface{ Message() string }); ok && m.Message() == want {
			return true
		}
	}
	return false
}
