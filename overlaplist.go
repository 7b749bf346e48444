package spatialhash

// OverlapList is an append-only, length-prefixed store of overlap
// candidate groups. Each group is opened with Group, filled with Push,
// and closed with Ungroup; completed groups are laid end-to-end in list as
// [count, id_0, ..., id_{count-1}, count, ...]. A group that ends up with
// fewer than 2 real ids (an anchor with no colliders, or no pushes at all)
// is discarded entirely by Ungroup: a candidate with no colliders is not
// a useful overlap report.
//
// Internally, an open group's tail slot holds a running write cursor,
// initialized to 1 by Group and incremented by 1 on every successful
// (non-duplicate) Push; Push writes the id into the slot the cursor used
// to occupy and appends the incremented cursor as the new tail. Ungroup
// reads the final cursor value off to recover both the group's id count
// (off-1) and its start offset (list length - off - 1) without needing to
// have tracked either separately while the group was open.
type OverlapList struct {
	list      []Id
	groupOpen bool
	size      int
	groupSet  idSet[Id]
}

// NewOverlapList constructs an empty list.
func NewOverlapList() *OverlapList {
	return &OverlapList{groupSet: newIdSet[Id]()}
}

// Clear empties the list, preserving the capacity of its backing slice.
func (l *OverlapList) Clear() {
	assert(!l.groupOpen, "Clear: a group is still open")
	l.list = l.list[:0]
	l.size = 0
	l.groupSet.reset()
}

// Empty reports whether the list has zero completed groups.
func (l *OverlapList) Empty() bool { return l.size == 0 }

// Size reports the number of completed groups.
func (l *OverlapList) Size() int { return l.size }

// Group opens a new group. Only one group may be open at a time.
func (l *OverlapList) Group() {
	assert(!l.groupOpen, "Group: a group is already open")
	l.groupOpen = true
	l.groupSet.reset()
	l.list = append(l.list, 0, 1) // placeholder count, initial cursor
}

// Push adds id to the currently open group, silently dropping it if it is
// already present in that group. Push never deduplicates across groups.
func (l *OverlapList) Push(id Id) {
	assert(l.groupOpen, "Push: no group is open")
	if !l.groupSet.add(id) {
		return
	}

	tail := len(l.list) - 1
	cursor := l.list[tail]
	l.list[tail] = id
	l.list = append(l.list, cursor+1)
}

// Ungroup closes the currently open group. Groups that ended up with
// fewer than 2 real ids are discarded; otherwise the group's leading
// placeholder is overwritten with its final count and the trailing cursor
// is popped, leaving [count, id_0, ..., id_{count-1}] in place.
func (l *OverlapList) Ungroup() {
	assert(l.groupOpen, "Ungroup: no group is open")
	l.groupOpen = false

	tail := len(l.list) - 1
	off := l.list[tail]
	start := len(l.list) - int(off) - 1

	if off <= 2 {
		l.list = l.list[:start]
		return
	}

	l.list[start] = off - 1
	l.list = l.list[:len(l.list)-1]
	l.size++
}

// Overlaps is a borrowed view over the ids of one completed group: the
// anchor first, then its colliders. It is valid until the next mutation
// of the list that produced it.
type Overlaps []Id

// Each calls f once per completed group, in storage order. The view
// passed to f is valid until the next mutation of the list.
func (l *OverlapList) Each(f func(ids Overlaps)) {
	i := 0
	for i < len(l.list) {
		count := int(l.list[i])
		f(Overlaps(l.list[i+1 : i+1+count]))
		i += count + 1
	}
}
