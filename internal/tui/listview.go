package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

// ListCallbacks are invoked by the list view; it never mutates items itself.
type ListCallbacks struct {
	OnDelete func(id int)
	OnToggle func(id int)
	OnClear  func()
}

type listKeys struct {
	toggle, delete, clear, sort key.Binding
	sortInput, sortDesc, sortPack key.Binding
}

func newListKeys() listKeys {
	return listKeys{
		toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pack")),
		delete:    key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		clear:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear list")),
		sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		sortInput: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "input order")),
		sortDesc:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "description")),
		sortPack:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "packed")),
	}
}

// ListView shows a derived ordering of the canonical items and owns the
// sort-mode selection.
type ListView struct {
	list   list.Model
	mode   packing.SortMode
	sorter *packing.Sorter
	keys   listKeys
	cb     ListCallbacks
	source []model.Item
	suffix string
}

func NewListView(sorter *packing.Sorter, mode packing.SortMode, cb ListCallbacks) ListView {
	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.Title = mode.Label()
	// d deletes here; keep paging on the remaining keys
	l.KeyMap.NextPage = key.NewBinding(
		key.WithKeys("right", "l", "pgdown", "f"),
		key.WithHelp("→/l/pgdn", "next page"),
	)

	v := ListView{list: l, mode: mode, sorter: sorter, keys: newListKeys(), cb: cb}
	extra := func() []key.Binding {
		return []key.Binding{v.keys.toggle, v.keys.delete, v.keys.clear, v.keys.sort}
	}
	v.list.AdditionalShortHelpKeys = extra
	v.list.AdditionalFullHelpKeys = func() []key.Binding {
		return append(extra(), v.keys.sortInput, v.keys.sortDesc, v.keys.sortPack)
	}
	return v
}

// SetItems replaces the source sequence and re-derives the display order,
// keeping the cursor on the same item when it is still present.
func (v *ListView) SetItems(items []model.Item) tea.Cmd {
	v.source = items
	return v.rederive()
}

// Mode is the current sort selection.
func (v ListView) Mode() packing.SortMode { return v.mode }

// SetMode changes the sort selection and re-derives the view.
func (v *ListView) SetMode(mode packing.SortMode) tea.Cmd {
	v.mode = mode
	v.updateTitle()
	return v.rederive()
}

// Visible returns the rows on display, in order. An applied filter narrows
// them.
func (v ListView) Visible() []model.Item {
	out := make([]model.Item, 0, len(v.list.VisibleItems()))
	for _, it := range v.list.VisibleItems() {
		if r, ok := it.(row); ok {
			out = append(out, r.item)
		}
	}
	return out
}

// Selected returns the item under the cursor.
func (v ListView) Selected() (model.Item, bool) {
	r, ok := v.list.SelectedItem().(row)
	return r.item, ok
}

// Filtering reports whether the filter prompt has the keyboard.
func (v ListView) Filtering() bool {
	return v.list.FilterState() == list.Filtering
}

// Filtered reports whether a filter is narrowing the visible rows.
func (v ListView) Filtered() bool {
	return v.list.FilterState() == list.FilterApplied
}

func (v *ListView) SetSize(w, h int) { v.list.SetSize(w, h) }

func (v *ListView) SetTitleSuffix(s string) {
	v.suffix = s
	v.updateTitle()
}

// FilterState exposes the list's filter state.
func (v ListView) FilterState() list.FilterState { return v.list.FilterState() }

func (v *ListView) updateTitle() {
	v.list.Title = v.mode.Label()
	if v.suffix != "" {
		v.list.Title = fmt.Sprintf("%s  %s", v.mode.Label(), v.suffix)
	}
}

func (v ListView) View() string { return v.list.View() }

func (v *ListView) rederive() tea.Cmd {
	sel, hadSel := v.Selected()

	sorted := v.sorter.Sort(v.source, v.mode)
	rows := make([]list.Item, 0, len(sorted))
	for _, it := range sorted {
		rows = append(rows, row{item: it})
	}
	cmd := v.list.SetItems(rows)

	if v.list.FilterState() != list.Unfiltered || len(sorted) == 0 {
		return cmd
	}
	if hadSel {
		for i, it := range sorted {
			if it.ID == sel.ID {
				v.list.Select(i)
				return cmd
			}
		}
	}
	if v.list.Index() >= len(sorted) {
		v.list.Select(len(sorted) - 1)
	}
	return cmd
}

// Update handles list actions and forwards everything else to the list.
func (v ListView) Update(msg tea.Msg) (ListView, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && !v.Filtering() {
		switch {
		case key.Matches(km, v.keys.toggle):
			if it, ok := v.Selected(); ok && v.cb.OnToggle != nil {
				v.cb.OnToggle(it.ID)
			}
			return v, nil
		case key.Matches(km, v.keys.delete):
			if it, ok := v.Selected(); ok && v.cb.OnDelete != nil {
				v.cb.OnDelete(it.ID)
			}
			return v, nil
		case key.Matches(km, v.keys.clear):
			if v.cb.OnClear != nil {
				v.cb.OnClear()
			}
			return v, nil
		case key.Matches(km, v.keys.sort):
			cmd := v.SetMode(v.mode.Next())
			return v, cmd
		case key.Matches(km, v.keys.sortInput):
			cmd := v.SetMode(packing.SortInput)
			return v, cmd
		case key.Matches(km, v.keys.sortDesc):
			cmd := v.SetMode(packing.SortDescription)
			return v, cmd
		case key.Matches(km, v.keys.sortPack):
			cmd := v.SetMode(packing.SortPacked)
			return v, cmd
		}
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}
