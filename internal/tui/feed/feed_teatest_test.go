package feed

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/google/go-cmp/cmp"

	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
)

func startFeedTestModel(t *testing.T, m Model) *teatest.TestModel {
	t.Helper()
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))
	t.Cleanup(func() {
		_ = tm.Quit()
	})
	return tm
}

func waitForFeedOutput(t *testing.T, tm *teatest.TestModel, contains string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte(contains))
	}, teatest.WithDuration(3*time.Second), teatest.WithCheckInterval(25*time.Millisecond))
}

func TestFeedRefreshEndToEnd(t *testing.T) {
	m, _ := newTestModel(t, nil)
	tm := startFeedTestModel(t, m)

	waitForFeedOutput(t, tm, "Item 1 · refresh 0")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	waitForFeedOutput(t, tm, "Item 1 · refresh 1")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final, ok := tm.FinalModel(t).(Model)
	if !ok {
		t.Fatalf("final model type = %T, want Model", tm.FinalModel(t))
	}
	if got := final.Header().State(); got != refresh.StateIdle && got != refresh.StateRefreshing {
		t.Fatalf("header state = %s", got)
	}
	if len(final.Items()) != 30 {
		t.Fatalf("items = %d, want 30", len(final.Items()))
	}
}

func TestFeedLoadMoreEndToEnd(t *testing.T) {
	m, _ := newTestModel(t, nil)
	tm := startFeedTestModel(t, m)

	waitForFeedOutput(t, tm, "30 items")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	waitForFeedOutput(t, tm, "40 items")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	want := NumberedSource.Page(0, 1, 10)
	if d := cmp.Diff(want, final.Items()[30:]); d != "" {
		t.Fatalf("appended page mismatch (-want +got):\n%s", d)
	}
}
