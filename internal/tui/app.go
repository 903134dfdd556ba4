package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/packlist/internal/logging"
	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

// Options tune the application root.
type Options struct {
	Sort   packing.SortMode
	Sorter *packing.Sorter
	Logger logrus.FieldLogger
}

// collection is the single writer of the canonical list. The four methods
// are the only mutation points in the UI.
type collection struct {
	items   *packing.List
	log     logrus.FieldLogger
	changed bool
}

func (c *collection) add(it model.Item) {
	c.items.Add(it)
	c.changed = true
	c.log.WithFields(logrus.Fields{"id": it.ID, "quantity": it.Quantity}).Debug("item added")
}

func (c *collection) delete(id int) {
	ok := c.items.Delete(id)
	c.changed = c.changed || ok
	c.log.WithFields(logrus.Fields{"id": id, "noop": !ok}).Debug("item deleted")
}

func (c *collection) toggle(id int) {
	ok := c.items.Toggle(id)
	c.changed = c.changed || ok
	c.log.WithFields(logrus.Fields{"id": id, "noop": !ok}).Debug("item toggled")
}

func (c *collection) clear() {
	n := c.items.Len()
	c.items.Clear()
	c.changed = true
	c.log.WithField("removed", n).Debug("list cleared")
}

// App is the Bubble Tea root model. It owns the canonical list and wires
// the form and list view to it.
type App struct {
	state  *collection
	list   ListView
	form   Form
	adding bool

	addKey, quitKey key.Binding
	width, height   int
}

func New(items *packing.List, ids packing.IDSource, opts Options) App {
	if opts.Sorter == nil {
		opts.Sorter = packing.NewSorter("en")
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	state := &collection{items: items, log: opts.Logger}
	a := App{
		state: state,
		list: NewListView(opts.Sorter, opts.Sort, ListCallbacks{
			OnDelete: state.delete,
			OnToggle: state.toggle,
			OnClear:  state.clear,
		}),
		form:    NewForm(ids),
		addKey:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		quitKey: key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		width:   80,
		height:  24,
	}
	a.refresh()
	a.resize()
	return a
}

// Items returns the canonical list in input order.
func (a App) Items() []model.Item { return a.state.items.Items() }

// Visible returns the list view's current display order.
func (a App) Visible() []model.Item { return a.list.Visible() }

// Mode is the list view's sort selection.
func (a App) Mode() packing.SortMode { return a.list.Mode() }

func (a App) Adding() bool { return a.adding }

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		a.width, a.height = ws.Width, ws.Height
		a.resize()
		return a, nil
	}

	if a.adding {
		return a.updateForm(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok && !a.list.Filtering() {
		switch {
		case km.Type == tea.KeyCtrlC:
			return a, tea.Quit
		case km.Type == tea.KeyEsc && a.list.Filtered():
			// esc clears the filter
		case key.Matches(km, a.quitKey):
			return a, tea.Quit
		case key.Matches(km, a.addKey):
			a.adding = true
			a.form.Reset()
			a.resize()
			cmd := a.form.Focus()
			return a, cmd
		}
	}

	before := a.list.Mode()
	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	if mode := a.list.Mode(); mode != before {
		a.state.log.WithField("mode", mode.String()).Debug("sort mode changed")
	}
	// Only re-derive after a mutation. Re-deriving on every message would
	// reset an in-progress filter each time its matches arrive.
	if !a.state.changed {
		return a, cmd
	}
	rcmd := a.refresh()
	return a, tea.Batch(cmd, rcmd)
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyCtrlC:
			return a, tea.Quit
		case tea.KeyEnter:
			if a.form.Submit(a.state.add) {
				a.form.Blur()
				a.adding = false
				a.resize()
				cmd := a.refresh()
				return a, cmd
			}
			return a, nil
		case tea.KeyEsc:
			a.form.Reset()
			a.form.Blur()
			a.adding = false
			a.resize()
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

// refresh re-derives the list view from the canonical collection.
func (a *App) refresh() tea.Cmd {
	a.state.changed = false
	st := a.state.items.Stats()
	t := ui.Current()
	a.list.SetTitleSuffix(fmt.Sprintf("%s %d  %s %d",
		t.Success.Render(t.SymDone), st.Packed,
		t.Pending.Render(t.SymPending), st.Total-st.Packed,
	))
	return a.list.SetItems(a.state.items.Items())
}

func (a *App) resize() {
	// border, padding and footer
	h := a.height - 6
	if a.adding {
		h -= 3
	}
	if h < 3 {
		h = 3
	}
	w := a.width - 4
	if w < 10 {
		w = 10
	}
	a.list.SetSize(w, h)
}

func (a App) View() string {
	t := ui.Current()
	content := a.list.View()
	if a.adding {
		bar := lipgloss.NewStyle().
			Border(t.Border).
			BorderForeground(t.BorderColor).
			Padding(0, 1)
		content += "\n" + bar.Render(a.form.View())
	}
	content += "\n" + statsLine(a.state.items.Stats())

	frame := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return frame.Render(content)
}

// statsLine is the footer summary under the list.
func statsLine(st packing.Stats) string {
	t := ui.Current()
	switch {
	case st.Total == 0:
		return t.Muted.Render("Start adding some items to your packing list")
	case st.Packed == st.Total:
		return t.Success.Render("You got everything! Ready to go")
	}
	return fmt.Sprintf("%s  %s",
		t.Muted.Render(ui.ProgressBar(st.Packed, st.Total, 20)),
		fmt.Sprintf("You have %d items on your list, and you already packed %d (%d%%)", st.Total, st.Packed, st.Percent),
	)
}

// Run starts the interactive program and returns the list as it was when
// the user quit.
func Run(items *packing.List, ids packing.IDSource, opts Options) ([]model.Item, error) {
	p := tea.NewProgram(New(items, ids, opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run tui: %w", err)
	}
	if fm, ok := final.(App); ok {
		return fm.Items(), nil
	}
	return items.Items(), nil
}
