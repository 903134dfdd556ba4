package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
)

func TestAppSortModesOnTripList(t *testing.T) {
	a := newTripApp(t)
	assert.Equal(t, packing.SortInput, a.Mode())
	assert.Equal(t, []string{"Passports", "Socks", "Charger"}, descriptions(a.Visible()))

	a = send(t, a, keyMsg("2"))
	assert.Equal(t, packing.SortDescription, a.Mode())
	assert.Equal(t, []string{"Charger", "Passports", "Socks"}, descriptions(a.Visible()))

	a = send(t, a, keyMsg("3"))
	assert.Equal(t, []string{"Passports", "Socks", "Charger"}, descriptions(a.Visible()))

	a = send(t, a, keyMsg("1"))
	assert.Equal(t, tripItems(), a.Visible())
	assert.Equal(t, tripItems(), a.Items(), "switching modes never mutates the list")
}

func TestAppSortKeyCycles(t *testing.T) {
	a := newTripApp(t)
	a = send(t, a, keyMsg("s"))
	assert.Equal(t, packing.SortDescription, a.Mode())
	a = send(t, a, keyMsg("s"), keyMsg("s"))
	assert.Equal(t, packing.SortInput, a.Mode())
	assert.Equal(t, tripItems(), a.Items())
}

func TestAppAddThroughForm(t *testing.T) {
	a := newTripApp(t)

	a = send(t, a, keyMsg("a"))
	require.True(t, a.Adding())

	a = send(t, a, keyMsg("Towel"), tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, a.Adding())

	items := a.Items()
	require.Len(t, items, 4)
	assert.Equal(t, model.Item{ID: 4, Description: "Towel", Quantity: 3, Packed: false}, items[3])
}

func TestAppEmptySubmitIsIgnored(t *testing.T) {
	a := newTripApp(t)
	a = send(t, a, keyMsg("a"), keyMsg("   "), tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, a.Adding(), "form stays open")
	assert.Equal(t, tripItems(), a.Items())
}

func TestAppEscCancelsForm(t *testing.T) {
	a := newTripApp(t)
	a = send(t, a, keyMsg("a"), keyMsg("Hat"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, a.Adding())
	assert.Equal(t, tripItems(), a.Items())

	a = send(t, a, keyMsg("a"))
	assert.Empty(t, a.form.Description(), "cancel resets the form")
}

func TestAppToggleFollowsItemInPackedSort(t *testing.T) {
	a := newTripApp(t)
	a = send(t, a, keyMsg("3"))

	a = send(t, a, keyMsg(" "))
	assert.True(t, a.Items()[0].Packed, "Passports packed")
	assert.Equal(t, []string{"Socks", "Passports", "Charger"}, descriptions(a.Visible()))

	sel, ok := a.list.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, sel.ID, "cursor stays on the toggled item")
}

func TestAppDelete(t *testing.T) {
	a := newTripApp(t)
	a = send(t, a, keyMsg("2"))
	sel, ok := a.list.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, sel.ID, "cursor follows Passports across the sort change")

	a = send(t, a, keyMsg("d"))
	assert.Equal(t, []string{"Socks", "Charger"}, descriptions(a.Items()))
	assert.Equal(t, []string{"Charger", "Socks"}, descriptions(a.Visible()))
}

func TestAppDeleteLastRowKeepsCursorInRange(t *testing.T) {
	a := newTripApp(t)
	a = send(t, a, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, keyMsg("d"))

	require.Len(t, a.Items(), 2)
	sel, ok := a.list.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, sel.ID)
}

func TestAppClear(t *testing.T) {
	a := newTripApp(t)
	a = send(t, a, keyMsg("C"))
	assert.Empty(t, a.Items())
	assert.Empty(t, a.Visible())

	a = send(t, a, keyMsg("s"))
	assert.Equal(t, packing.SortDescription, a.Mode(), "selector works on an empty list")
	a = send(t, a, keyMsg("d"), keyMsg(" "), keyMsg("C"))
	assert.Empty(t, a.Items())
}

func TestAppQuit(t *testing.T) {
	a := newTripApp(t)
	_, cmd := a.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestAppViewShowsStats(t *testing.T) {
	plainRender(t)

	a := newTripApp(t)
	assert.Contains(t, a.View(), "You have 3 items on your list, and you already packed 1 (33%)")

	a = send(t, a, keyMsg("C"))
	assert.Contains(t, a.View(), "Start adding some items to your packing list")
}

func TestStatsLinePercentagesAgree(t *testing.T) {
	plainRender(t)

	l := packing.NewList(tripItems())
	l.Toggle(1)
	out := statsLine(l.Stats())
	assert.Equal(t, 2, strings.Count(out, "67%"), out)
	assert.NotContains(t, out, "66%")
}

func TestStatsLineAllPacked(t *testing.T) {
	plainRender(t)
	assert.Equal(t, "You got everything! Ready to go", statsLine(packing.Stats{Total: 2, Packed: 2, Percent: 100}))
}

func TestAppFilterNarrowsRows(t *testing.T) {
	a := newTripApp(t)
	for _, k := range []string{"/", "S", "o", "c"} {
		a = sendAll(t, a, keyMsg(k))
	}
	assert.Equal(t, list.Filtering, a.list.FilterState())
	assert.Equal(t, []string{"Socks"}, descriptions(a.Visible()))

	a = sendAll(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, list.FilterApplied, a.list.FilterState())
	assert.Equal(t, []string{"Socks"}, descriptions(a.Visible()))

	a = sendAll(t, a, keyMsg(" "))
	assert.True(t, a.Items()[1].Packed, "toggle acts on the filtered row")
	assert.Equal(t, list.FilterApplied, a.list.FilterState())
	assert.Equal(t, []string{"Socks"}, descriptions(a.Visible()))

	a = sendAll(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, list.Unfiltered, a.list.FilterState())
	assert.Len(t, a.Visible(), 3)
}
