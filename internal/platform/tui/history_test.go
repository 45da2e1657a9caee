package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

func testEntries() []storage.RunEntry {
	start := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	return []storage.RunEntry{
		{ID: 2, RunSummary: life.RunSummary{
			StartedAt: start, EndedAt: start.Add(2500 * time.Millisecond),
			Generations: 5, InitialPopulation: 3, PeakPopulation: 6, FinalPopulation: 4,
			EndReason: life.EndReset,
		}},
		{ID: 1, RunSummary: life.RunSummary{
			StartedAt: start.Add(-time.Hour), EndedAt: start.Add(-time.Hour + time.Minute),
			Generations: 120, InitialPopulation: 5, PeakPopulation: 30, FinalPopulation: 0,
			EndReason: life.EndQuit,
		}},
	}
}

func TestRunRows(t *testing.T) {
	rows := RunRows(testEntries())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if len(first) != len(HistoryColumns) {
		t.Fatalf("row has %d cells, expected %d", len(first), len(HistoryColumns))
	}
	want := map[int]string{0: "2", 2: "2.5s", 3: "5", 4: "3", 5: "6", 6: "4", 7: "reset"}
	for i, v := range want {
		if first[i] != v {
			t.Errorf("%s = %q, expected %q", HistoryColumns[i], first[i], v)
		}
	}
	if rows[1][2] != "1m0s" {
		t.Errorf("Duration = %q, expected 1m0s", rows[1][2])
	}
}

func TestStatsLine(t *testing.T) {
	if got := StatsLine(nil); got != "No runs recorded yet." {
		t.Errorf("StatsLine(nil) = %q", got)
	}

	stats := &storage.RunStats{Runs: 2, TotalGenerations: 125, LongestRun: 120, PeakPopulation: 30,
		LastRun: time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)}
	got := StatsLine(stats)
	if !strings.HasPrefix(got, "2 runs, 125 generations total, longest 120, peak population 30") {
		t.Errorf("StatsLine() = %q", got)
	}
}

func TestHistoryModel(t *testing.T) {
	m := NewHistoryModel(testEntries(), nil, 100, 30)

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "RUN HISTORY") || !strings.Contains(view, "reset") {
		t.Errorf("View() missing content:\n%s", view)
	}

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if next.(HistoryModel).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestHistoryModelEmpty(t *testing.T) {
	m := NewHistoryModel(nil, &storage.RunStats{}, 80, 24)
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "No runs recorded yet.") {
		t.Errorf("View() = %q", view)
	}

	// Resizing rebuilds the table without losing rows.
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if next.(HistoryModel).width != 60 {
		t.Error("resize not applied")
	}
}
