package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree() (root, row, input *Element) {
	root = New("div", "root")
	body := New("tbody", "body")
	row = New("tr", "row")
	cell := New("td", "cell")
	input = New(TagInput, "checkbox")
	root.Append(body.Append(row.Append(cell.Append(input))))
	return root, row, input
}

func TestClasses(t *testing.T) {
	e := New("div", "a", "b", "a")
	assert.Equal(t, []string{"a", "b"}, e.Classes())

	e.AddClass("c")
	e.RemoveClass("a")
	e.RemoveClass("missing")

	assert.True(t, e.HasClass("b"))
	assert.True(t, e.HasClass("c"))
	assert.False(t, e.HasClass("a"))
}

func TestAttributes(t *testing.T) {
	e := New("tr")
	_, ok := e.Attr("data-row-id")
	assert.False(t, ok)

	e.SetAttr("data-row-id", "u1")
	v, ok := e.Attr("data-row-id")
	assert.True(t, ok)
	assert.Equal(t, "u1", v)

	e.RemoveAttr("data-row-id")
	_, ok = e.Attr("data-row-id")
	assert.False(t, ok)
}

func TestClosestAndContains(t *testing.T) {
	root, row, input := buildTree()

	assert.Same(t, row, input.Closest("row"))
	assert.Same(t, root, input.Closest("root"))
	assert.Same(t, input, input.Closest("checkbox"))
	assert.Nil(t, input.Closest("missing"))

	assert.True(t, root.Contains(input))
	assert.True(t, row.Contains(row))
	assert.False(t, input.Contains(row))
	assert.False(t, root.Contains(New("div")))
}

func TestQueryDocumentOrder(t *testing.T) {
	root := New("div")
	a := New("span", "x")
	b := New("span", "x")
	c := New("span", "x")
	root.Append(New("div").Append(a, b), c)

	assert.Same(t, a, root.Query("x"))
	assert.Equal(t, []*Element{a, b, c}, root.QueryAll("x"))
	assert.Nil(t, root.Query("y"))
	assert.Empty(t, root.QueryAll("y"))
}

func TestQueryAllExcludesSelf(t *testing.T) {
	root := New("div", "x")
	child := New("div", "x")
	root.Append(child)

	assert.Equal(t, []*Element{child}, root.QueryAll("x"))
}

func TestAppendReparents(t *testing.T) {
	a := New("div")
	b := New("div")
	child := New("span")

	a.Append(child)
	b.Append(child)

	assert.Empty(t, a.Children())
	assert.Equal(t, []*Element{child}, b.Children())
	assert.Same(t, b, child.Parent())

	child.Remove()
	assert.Nil(t, child.Parent())
	assert.Empty(t, b.Children())
}

func TestClickTogglesAndBubbles(t *testing.T) {
	root, _, input := buildTree()
	input.SetIndeterminate(true)

	var got []Event
	root.AddEventListener(EventChange, func(ev Event) { got = append(got, ev) })

	input.Click()

	assert.True(t, input.Checked())
	assert.False(t, input.Indeterminate())
	require.Len(t, got, 1)
	assert.Equal(t, EventChange, got[0].Type)
	assert.Same(t, input, got[0].Target)

	input.Click()
	assert.False(t, input.Checked())
	assert.Len(t, got, 2)
}

func TestClickIgnoredForDisabledAndNonInputs(t *testing.T) {
	root, row, input := buildTree()
	count := 0
	root.AddEventListener(EventChange, func(Event) { count++ })

	input.SetDisabled(true)
	input.Click()
	row.Click()

	assert.False(t, input.Checked())
	assert.Equal(t, 0, count)
}

func TestDispatchOrderTargetFirst(t *testing.T) {
	root, row, input := buildTree()
	var order []string
	root.AddEventListener(EventChange, func(Event) { order = append(order, "root") })
	row.AddEventListener(EventChange, func(Event) { order = append(order, "row") })
	input.AddEventListener(EventChange, func(Event) { order = append(order, "input") })

	input.Dispatch(Event{Type: EventChange, Target: input})

	assert.Equal(t, []string{"input", "row", "root"}, order)
}

func TestRemoveEventListener(t *testing.T) {
	root, _, input := buildTree()
	count := 0
	remove := root.AddEventListener(EventChange, func(Event) { count++ })
	assert.Equal(t, 1, root.ListenerCount(EventChange))

	input.Click()
	remove()
	remove()
	input.Click()

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, root.ListenerCount(EventChange))
}

func TestSetCheckedDoesNotDispatch(t *testing.T) {
	root, _, input := buildTree()
	count := 0
	root.AddEventListener(EventChange, func(Event) { count++ })

	input.SetChecked(true)

	assert.True(t, input.Checked())
	assert.Equal(t, 0, count)
}
