package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/tvdb-fanart/internal/config"
	"github.com/handiism/tvdb-fanart/internal/download"
	"github.com/handiism/tvdb-fanart/internal/logging"
	"github.com/handiism/tvdb-fanart/internal/model"
)

func newTestModel() Model {
	settings := config.DefaultSettings()
	settings.OutputPath = "/tmp/fanart"
	return NewModel(settings, logging.Discard())
}

func TestModel_ToggleOptions(t *testing.T) {
	m := newTestModel()
	thumbs := m.thumbs

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)
	if m.thumbs == thumbs {
		t.Error("ctrl+t should toggle thumbnails")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	m = updated.(Model)
	if !m.vignettes {
		t.Error("ctrl+v should enable vignettes")
	}

	if !strings.Contains(m.View(), "/tmp/fanart") {
		t.Error("input view should show the output path")
	}
}

func TestModel_InitDone(t *testing.T) {
	m := newTestModel()
	m.state = StateInitializing

	fa := model.NewFanartBanner(7, "fanart/original/7.jpg", model.DefaultLanguage)
	fa.Resolution = model.Resolution{Width: 1920, Height: 1080}
	fa.SetColors([]model.Color{{R: 255}, {G: 255}, {B: 255}})

	updated, _ := m.Update(InitDoneMsg{Banners: []*model.FanartBanner{fa}})
	m = updated.(Model)
	if m.state != StateLoading {
		t.Fatalf("state = %v, want StateLoading", m.state)
	}

	view := m.View()
	if !strings.Contains(view, "#7") || !strings.Contains(view, "1920x1080") {
		t.Errorf("loading view does not list the banner:\n%s", view)
	}
}

func TestModel_InitError(t *testing.T) {
	m := newTestModel()
	m.state = StateInitializing

	updated, _ := m.Update(InitDoneMsg{Err: errors.New("no fan art found")})
	m = updated.(Model)
	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}
	if !strings.Contains(m.View(), "no fan art found") {
		t.Error("error view should show the error")
	}
}

func TestModel_LoadDone(t *testing.T) {
	m := newTestModel()
	m.state = StateLoading
	m.sink.add(download.ProgressEvent{Message: "Loaded 3/4 images, 1 failed", Level: download.LevelWarning})

	updated, _ := m.Update(LoadDoneMsg{Completed: 3, Failed: 1, Total: 4})
	m = updated.(Model)
	if m.state != StateComplete {
		t.Fatalf("state = %v, want StateComplete", m.state)
	}
	if len(m.logs) != 1 {
		t.Errorf("logs = %d, want 1", len(m.logs))
	}
	if !strings.Contains(m.View(), "Images: 3/4") {
		t.Error("complete view should show image counts")
	}
}

func TestModel_VerboseFilter(t *testing.T) {
	m := newTestModel()
	m.appendLogs([]LogEntry{
		{Message: "detail", Level: download.LevelVerbose},
		{Message: "info", Level: download.LevelInfo},
	})
	if len(m.logs) != 1 || m.logs[0].Message != "info" {
		t.Errorf("logs = %v, want only the info entry", m.logs)
	}
}

func TestModel_CancelledInitIgnoresLateResult(t *testing.T) {
	m := newTestModel()
	m.textInput.SetValue("80348")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.state != StateInitializing {
		t.Fatalf("state = %v, want StateInitializing", m.state)
	}
	firstRun := m.run

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}

	fa := model.NewFanartBanner(7, "fanart/original/7.jpg", model.DefaultLanguage)
	updated, cmd := m.Update(InitDoneMsg{Run: firstRun, Banners: []*model.FanartBanner{fa}})
	m = updated.(Model)
	if m.state != StateError {
		t.Errorf("state = %v after a late result, want StateError", m.state)
	}
	if cmd != nil {
		t.Error("a late result should not start loading")
	}
	if len(m.banners) != 0 {
		t.Error("a late result should not set banners")
	}
}

func TestModel_OldRunResultsIgnored(t *testing.T) {
	m := newTestModel()
	m.textInput.SetValue("80348")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	oldRun := m.run

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = updated.(Model)
	m.textInput.SetValue("80349")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.state != StateInitializing || m.run == oldRun {
		t.Fatalf("state = %v run = %d, want a new initializing run", m.state, m.run)
	}

	updated, _ = m.Update(InitDoneMsg{Run: oldRun, Err: errors.New("stale")})
	m = updated.(Model)
	if m.state != StateInitializing {
		t.Errorf("state = %v, want StateInitializing", m.state)
	}

	updated, _ = m.Update(LoadDoneMsg{Run: oldRun, Completed: 1, Total: 1})
	m = updated.(Model)
	if m.state != StateInitializing || m.completed != 0 {
		t.Errorf("state = %v completed = %d, stale load result should be ignored", m.state, m.completed)
	}
}
