package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/ui"
)

// row adapts model.Item to bubbles/list.Item
type row struct {
	item model.Item
}

func (r row) FilterValue() string { return r.item.Description }

// rowDelegate renders one item per line. It holds no state; the row's
// delete and toggle actions are resolved by id in ListView.
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	fmt.Fprint(w, renderRow(r, index == m.Index(), m.Width()))
}

func renderRow(r row, selected bool, width int) string {
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	text := fmt.Sprintf("%d %s", r.item.Quantity, r.item.Description)
	if width > 4 {
		text = ui.Truncate(text, width-4)
	}
	if r.item.Packed {
		box = t.Success.Render(t.BoxChecked)
		text = t.PackedText.Render(text)
	}

	prefix := "  "
	if selected {
		prefix = t.Selected.Render(">") + " "
	}
	return prefix + box + " " + text
}
