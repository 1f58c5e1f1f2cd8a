package list

// Node is a link in a circular list. The zero value is not linked anywhere;
// call Init (sentinels) or Bind (payload nodes) before use.
type Node[T any] struct {
	next  *Node[T]
	prev  *Node[T]
	owner T
}

// Init turns n into an empty list.
func (n *Node[T]) Init() {
	n.next = n
	n.prev = n
}

// Bind records owner as the value embedding n and initialises n as a
// standalone ring.
func (n *Node[T]) Bind(owner T) {
	n.owner = owner
	n.Init()
}

// Entry returns the value that embeds n.
func (n *Node[T]) Entry() T {
	return n.owner
}

// Next returns the node following n.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the node preceding n.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Empty reports whether the list headed by n has no payload nodes.
func (n *Node[T]) Empty() bool {
	return n.next == n
}

// Singular reports whether the list headed by n has exactly one payload node.
func (n *Node[T]) Singular() bool {
	return !n.Empty() && n.next == n.prev
}

func link[T any](n, prev, next *Node[T]) {
	next.prev = n
	n.next = next
	n.prev = prev
	prev.next = n
}

// Add inserts n right after head.
func Add[T any](n, head *Node[T]) {
	link(n, head, head.next)
}

// AddTail inserts n right before head, which is the tail of the list.
func AddTail[T any](n, head *Node[T]) {
	link(n, head.prev, head)
}

// Del unlinks n from its list and leaves it as a standalone ring.
func Del[T any](n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.Init()
}

// Move unlinks n and inserts it after head.
func Move[T any](n, head *Node[T]) {
	Del(n)
	Add(n, head)
}

// MoveTail unlinks n and inserts it before head.
func MoveTail[T any](n, head *Node[T]) {
	Del(n)
	AddTail(n, head)
}

func splice[T any](from, prev, next *Node[T]) {
	first := from.next
	last := from.prev

	first.prev = prev
	prev.next = first
	last.next = next
	next.prev = last
}

// SpliceTail moves every payload node of from to the tail of head. from must
// be re-initialised before reuse; SpliceTailInit does that.
func SpliceTail[T any](from, head *Node[T]) {
	if from.Empty() {
		return
	}
	splice(from, head.prev, head)
}

// SpliceTailInit is SpliceTail followed by emptying from.
func SpliceTailInit[T any](from, head *Node[T]) {
	if from.Empty() {
		return
	}
	splice(from, head.prev, head)
	from.Init()
}

// SpliceInit moves every payload node of from to the front of head and
// empties from.
func SpliceInit[T any](from, head *Node[T]) {
	if from.Empty() {
		return
	}
	splice(from, head, head.next)
	from.Init()
}

// Each calls fn for every payload node of the list headed by head, front to
// back. fn may unlink or move the node it is given. Iteration stops early
// when fn returns false.
func Each[T any](head *Node[T], fn func(*Node[T]) bool) {
	for n, next := head.next, head.next.next; n != head; n, next = next, next.next {
		if !fn(n) {
			return
		}
	}
}

// Len counts the payload nodes of the list headed by head.
func Len[T any](head *Node[T]) int {
	count := 0
	for n := head.next; n != head; n = n.next {
		count++
	}
	return count
}

// CutRange moves the run first..last, inclusive and in list order, out of its
// list and into the empty list headed by dst.
func CutRange[T any](dst, first, last *Node[T]) {
	prev := first.prev
	next := last.next
	prev.next = next
	next.prev = prev

	dst.next = first
	first.prev = dst
	dst.prev = last
	last.next = dst
}
