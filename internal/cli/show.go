package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

func newShowCmd(f *rootFlags) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the list without starting the interactive view",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(showLines(s.sorter.Sort(s.items, s.mode), s.mode, group)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by unpacked/packed")
	return cmd
}

func showLines(items []model.Item, mode packing.SortMode, group bool) []string {
	t := ui.Current()
	st := packing.Summarize(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Packing list"),
		t.Success.Render(t.SymDone), st.Packed,
		t.Pending.Render(t.SymPending), st.Total-st.Packed,
		t.Accent.Render("Total"), st.Total,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(st.Packed, st.Total, 28)))
	lines = append(lines, t.Muted.Render(mode.Label()))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	return lines
}

func flatLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		box := t.Muted.Render(t.BoxUnchecked)
		text := fmt.Sprintf("%d %s", it.Quantity, ui.Truncate(it.Description, 80))
		if it.Packed {
			box = t.Success.Render(t.BoxChecked)
			text = t.PackedText.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("%2d.", i+1)), box, text))
	}
	return out
}

func groupLines(items []model.Item) []string {
	t := ui.Current()
	var unpacked, packed []model.Item
	for _, it := range items {
		if it.Packed {
			packed = append(packed, it)
		} else {
			unpacked = append(unpacked, it)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Unpacked"))
	if len(unpacked) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(unpacked)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Packed"))
	if len(packed) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(packed)...)
	}
	return lines
}
