package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func plainRender(t *testing.T) {
	t.Helper()
	old := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	ui.SetTheme("classic")
	t.Cleanup(func() { lipgloss.SetColorProfile(old) })
}

func tripItems() []model.Item {
	return []model.Item{
		{ID: 1, Description: "Passports", Quantity: 2, Packed: false},
		{ID: 2, Description: "Socks", Quantity: 12, Packed: false},
		{ID: 3, Description: "Charger", Quantity: 2, Packed: true},
	}
}

func newTripApp(t *testing.T) App {
	t.Helper()
	seed := tripItems()
	a := New(packing.NewList(seed), packing.NewSequence(seed), Options{})
	return send(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func send(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		next, _ := a.Update(msg)
		a = next.(App)
	}
	return a
}

func descriptions(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Description)
	}
	return out
}

// runCmd executes cmd and flattens batches. Commands that block (cursor
// blink ticks) are dropped after a short wait.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// sendAll delivers msg and then every message its commands produce, the way
// the program loop would. It fails if the exchange does not settle.
func sendAll(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	queue := []tea.Msg{msg}
	for n := 0; len(queue) > 0; n++ {
		if n > 50 {
			t.Fatalf("messages did not settle; still queued: %T", queue[0])
		}
		next, cmd := a.Update(queue[0])
		a = next.(App)
		queue = append(queue[1:], runCmd(cmd)...)
	}
	return a
}
