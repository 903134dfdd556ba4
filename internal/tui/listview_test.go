package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
)

func TestListViewClearAlwaysInvokesCallback(t *testing.T) {
	calls := 0
	v := NewListView(packing.NewSorter("en"), packing.SortInput, ListCallbacks{
		OnClear: func() { calls++ },
	})
	v.SetSize(60, 10)

	v, _ = v.Update(keyMsg("C"))
	assert.Equal(t, 1, calls, "empty list")

	v.SetItems(tripItems())
	v, _ = v.Update(keyMsg("C"))
	assert.Equal(t, 2, calls)
	assert.Len(t, v.Visible(), 3, "the view does not clear items itself")
}

func TestListViewForwardsIDs(t *testing.T) {
	var deleted, toggled []int
	v := NewListView(packing.NewSorter("en"), packing.SortDescription, ListCallbacks{
		OnDelete: func(id int) { deleted = append(deleted, id) },
		OnToggle: func(id int) { toggled = append(toggled, id) },
	})
	v.SetSize(60, 10)
	v.SetItems(tripItems())

	v, _ = v.Update(keyMsg(" "))
	v, _ = v.Update(keyMsg("d"))
	assert.Equal(t, []int{3}, toggled)
	assert.Equal(t, []int{3}, deleted)
}

func TestListViewDoesNotMutateSource(t *testing.T) {
	src := tripItems()
	v := NewListView(packing.NewSorter("en"), packing.SortInput, ListCallbacks{})
	v.SetItems(src)
	v.SetMode(packing.SortDescription)
	v.SetMode(packing.SortPacked)
	assert.Equal(t, tripItems(), src)
}

func TestRenderRow(t *testing.T) {
	plainRender(t)

	out := renderRow(row{item: model.Item{ID: 1, Description: "Passports", Quantity: 2}}, false, 40)
	assert.Equal(t, "  ☐ 2 Passports", out)

	out = renderRow(row{item: model.Item{ID: 3, Description: "Charger", Quantity: 2, Packed: true}}, true, 40)
	assert.Equal(t, "> ☑ 2 Charger", out)

	long := strings.Repeat("a", 50)
	out = renderRow(row{item: model.Item{ID: 4, Description: long, Quantity: 1}}, false, 20)
	assert.True(t, strings.HasSuffix(out, "…"))
}

func TestRowFilterValue(t *testing.T) {
	assert.Equal(t, "Socks", row{item: model.Item{Description: "Socks", Quantity: 12}}.FilterValue())
}

func TestListViewDKeyOnlyDeletes(t *testing.T) {
	v := NewListView(packing.NewSorter("en"), packing.SortInput, ListCallbacks{})
	assert.NotContains(t, v.list.KeyMap.NextPage.Keys(), "d")
	assert.Contains(t, v.keys.delete.Keys(), "d")

	var deleted []int
	v = NewListView(packing.NewSorter("en"), packing.SortInput, ListCallbacks{
		OnDelete: func(id int) { deleted = append(deleted, id) },
	})
	// one row per page, so a paging "d" would move the cursor instead
	v.SetSize(40, 5)
	v.SetItems(tripItems())
	v, _ = v.Update(keyMsg("d"))
	assert.Equal(t, []int{1}, deleted)
	sel, ok := v.Selected()
	assert.True(t, ok)
	assert.Equal(t, 1, sel.ID)
}

func TestListViewSortKeepsTitleSuffix(t *testing.T) {
	v := NewListView(packing.NewSorter("en"), packing.SortInput, ListCallbacks{})
	v.SetTitleSuffix("3 items")
	v.SetMode(packing.SortPacked)
	assert.Equal(t, "Sort by packed status  3 items", v.list.Title)
}
