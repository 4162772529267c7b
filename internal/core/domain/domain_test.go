package domain_test

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLayout(t *testing.T) {
	base := filepath.FromSlash("/work")

	assert.Equal(t, filepath.FromSlash("/work/.orchay/projects"), domain.ProjectsPath(base))
	assert.Equal(t, filepath.FromSlash("/work/.orchay/projects/alpha"), domain.ProjectPath(base, "alpha"))
	assert.Equal(t, filepath.FromSlash("/work/.orchay/projects/alpha/wbs.yaml"), domain.WBSPath(base, "alpha"))
	assert.Equal(t, filepath.FromSlash("/work/.orchay"), domain.OrchayPath(base))
	assert.Equal(t, filepath.FromSlash("/work/.orchay/settings/columns.json"), domain.SettingsPath(base, "columns"))
}

func TestValidateSettingsType(t *testing.T) {
	for _, name := range []string{"columns", "workflows", "task-types", "ui_v2"} {
		assert.True(t, domain.ValidateSettingsType(name), name)
	}
	for _, name := range []string{"", ".", "..", "../config", "a/b", `a\b`, "cols.json", "설정"} {
		assert.False(t, domain.ValidateSettingsType(name), name)
	}
}

func TestNewInitStatus(t *testing.T) {
	full := domain.WorkspaceLayout{Root: true, Settings: true, Projects: true}
	assert.True(t, domain.NewInitStatus(full).Initialized)

	missing := domain.WorkspaceLayout{Root: true, Templates: true, Projects: true}
	got := domain.NewInitStatus(missing)
	assert.False(t, got.Initialized)
	assert.Equal(t, missing, got.Status)

	data, err := json.Marshal(domain.NewInitStatus(full))
	require.NoError(t, err)
	assert.JSONEq(t, `{"initialized":true,"status":{"root":true,"settings":true,"templates":false,"projects":true}}`, string(data))
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.FromSlash("/tmp/xdg"))
	t.Setenv("HOME", filepath.FromSlash("/tmp/home"))

	path := domain.DefaultConfigPath()
	assert.Equal(t, domain.ConfigFileName, filepath.Base(path))
	assert.Equal(t, domain.AppDirName, filepath.Base(filepath.Dir(path)))
}

func TestNewNotification(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 8000, time.FixedZone("KST", 9*60*60))

	n := domain.NewNotification("projA", "/r/projA/wbs.yaml", at)

	assert.Equal(t, "projA", n.EntityID)
	assert.Equal(t, "/r/projA/wbs.yaml", n.Path)
	assert.Equal(t, "2026-03-03T20:06:07.000008Z", n.Timestamp)

	parsed, err := n.Time()
	require.NoError(t, err)
	assert.True(t, parsed.Equal(at))
}

func TestNotification_JSON(t *testing.T) {
	n := domain.Notification{EntityID: "projA", Path: "/r/projA/wbs.yaml", Timestamp: "2026-01-01T00:00:00Z"}

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entityId":"projA","path":"/r/projA/wbs.yaml","timestamp":"2026-01-01T00:00:00Z"}`, string(data))
}

func TestSessionState_String(t *testing.T) {
	tests := []struct {
		state domain.SessionState
		want  string
	}{
		{domain.SessionIdle, "idle"},
		{domain.SessionRunning, "running"},
		{domain.SessionStopRequested, "stop_requested"},
		{domain.SessionState(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestWBSDocument_Depth(t *testing.T) {
	two, five := 2, 5

	tests := []struct {
		name string
		doc  domain.WBSDocument
		want int
	}{
		{
			name: "project depth wins",
			doc: domain.WBSDocument{
				Project: domain.ProjectConfig{WBSDepth: &two},
				WBS:     &domain.WBSConfig{Depth: &five},
			},
			want: 2,
		},
		{
			name: "wbs section depth",
			doc:  domain.WBSDocument{WBS: &domain.WBSConfig{Depth: &five}},
			want: 5,
		},
		{
			name: "default depth",
			doc:  domain.WBSDocument{},
			want: domain.DefaultWBSDepth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.Depth())
		})
	}
}

func TestValidateProjectID(t *testing.T) {
	valid := []string{"projA", "my-project", "p.1"}
	for _, id := range valid {
		assert.True(t, domain.ValidateProjectID(id), id)
	}

	invalid := []string{"", ".", "..", "a/b", `a\b`, "../x"}
	for _, id := range invalid {
		assert.False(t, domain.ValidateProjectID(id), id)
	}
}

func TestHasKind(t *testing.T) {
	t.Run("bare sentinel", func(t *testing.T) {
		assert.True(t, domain.HasKind(domain.ErrProjectNotFound, domain.ErrProjectNotFound))
	})

	t.Run("sentinel with metadata", func(t *testing.T) {
		err := zerr.With(domain.ErrProjectNotFound, "project", "projA")
		assert.True(t, domain.HasKind(err, domain.ErrProjectNotFound))
		assert.False(t, domain.HasKind(err, domain.ErrRevisionMismatch))
	})

	t.Run("wrapped cause", func(t *testing.T) {
		err := zerr.With(zerr.Wrap(errors.New("disk full"), domain.ErrWBSWriteFailed.Error()), "path", "/x")
		assert.True(t, domain.HasKind(err, domain.ErrWBSWriteFailed))
	})

	t.Run("joined", func(t *testing.T) {
		err := errors.Join(errors.New("other"), domain.ErrNoSubscribers)
		assert.True(t, domain.HasKind(err, domain.ErrNoSubscribers))
	})

	t.Run("nil", func(t *testing.T) {
		assert.False(t, domain.HasKind(nil, domain.ErrProjectNotFound))
	})
}
