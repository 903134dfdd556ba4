package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

// MaxQuantity is the largest quantity the form offers.
const MaxQuantity = 20

// Form holds the transient input for a new item. It hands finished items to
// a callback and never touches the list itself.
type Form struct {
	input    textinput.Model
	quantity int
	ids      packing.IDSource

	more, less key.Binding
}

func NewForm(ids packing.IDSource) Form {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What do you need for your trip?"
	ti.CharLimit = 200

	return Form{
		input:    ti,
		quantity: model.DefaultQuantity,
		ids:      ids,
		more:     key.NewBinding(key.WithKeys("up", "ctrl+k"), key.WithHelp("↑", "more")),
		less:     key.NewBinding(key.WithKeys("down", "ctrl+j"), key.WithHelp("↓", "fewer")),
	}
}

func (f Form) Description() string { return f.input.Value() }
func (f Form) Quantity() int       { return f.quantity }

func (f *Form) SetDescription(s string) { f.input.SetValue(s) }

// SetQuantity clamps n to 1..MaxQuantity.
func (f *Form) SetQuantity(n int) {
	switch {
	case n < 1:
		n = 1
	case n > MaxQuantity:
		n = MaxQuantity
	}
	f.quantity = n
}

// Submit builds an item from the current input and passes it to onAdd.
// An empty description is ignored and Submit reports false.
func (f *Form) Submit(onAdd func(model.Item)) bool {
	desc := strings.TrimSpace(f.input.Value())
	if desc == "" {
		return false
	}
	it := model.Item{
		ID:          f.ids.Next(),
		Description: desc,
		Quantity:    f.quantity,
		Packed:      false,
	}
	onAdd(it)
	f.Reset()
	return true
}

// Reset restores the default input values.
func (f *Form) Reset() {
	f.input.SetValue("")
	f.quantity = model.DefaultQuantity
}

func (f *Form) Focus() tea.Cmd { return f.input.Focus() }
func (f *Form) Blur()          { f.input.Blur() }

// Update adjusts the quantity or edits the description.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.more):
			f.SetQuantity(f.quantity + 1)
			return f, nil
		case key.Matches(km, f.less):
			f.SetQuantity(f.quantity - 1)
			return f, nil
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f Form) View() string {
	t := ui.Current()
	title := t.Title.Render("Add item")
	hint := t.Muted.Render("↑/↓ quantity · enter add · esc cancel")
	qty := t.Accent.Render(fmt.Sprintf("qty %2d", f.quantity))
	return title + "  " + hint + "\n" + qty + " " + f.input.View()
}
