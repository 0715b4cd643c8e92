package linear

// GroupMatch records where capturing group Index (optionally named Name)
// matched. End is -1 until the group is closed. Per spec §4.4, repeated
// entry into the same group during backtracking overwrites Start and
// clears End — only the final accepting path's group state is kept
// ("last-enter-wins"); there is no snapshot/restore on backtrack.
type GroupMatch struct {
	Index int
	Name  string
	Start int
	End   int // -1 if not yet closed
}

// Match is the result of a successful linear match: the final cursor
// (equal to len(text)) and every group's span. Group 0 always spans the
// whole match.
type Match struct {
	End    int
	Groups []GroupMatch
}

// Group returns the GroupMatch for the given index, or the zero value
// and false if index is out of range.
func (m *Match) Group(index int) (GroupMatch, bool) {
	for _, g := range m.Groups {
		if g.Index == index {
			return g, true
		}
	}
	return GroupMatch{}, false
}

// GroupByName returns the GroupMatch for the given capture name, or the
// zero value and false if no group carries that name.
func (m *Match) GroupByName(name string) (GroupMatch, bool) {
	if name == "" {
		return GroupMatch{}, false
	}
	for _, g := range m.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return GroupMatch{}, false
}

// context holds the per-call mutable state of a backtracking match:
// the input text and the live group spans. It is created fresh for each
// Run call and discarded on return (spec §5: no state is shared across
// match invocations).
type context struct {
	input  string
	groups []GroupMatch
}

func newContext(input string, descriptors []GroupDescriptor) *context {
	groups := make([]GroupMatch, len(descriptors))
	for i, d := range descriptors {
		groups[i] = GroupMatch{Index: d.Index, Name: d.Name, Start: 0, End: -1}
	}
	return &context{input: input, groups: groups}
}

// enter records cursor as the (re-)opened start of group id, clearing any
// prior End — "last-enter-wins" per spec §4.4.
func (ctx *context) enter(id, cursor int) {
	for i := range ctx.groups {
		if ctx.groups[i].Index == id {
			ctx.groups[i].Start = cursor
			ctx.groups[i].End = -1
			return
		}
	}
}

// exit records cursor as the close of group id.
func (ctx *context) exit(id, cursor int) {
	for i := range ctx.groups {
		if ctx.groups[i].Index == id {
			ctx.groups[i].End = cursor
			return
		}
	}
}
