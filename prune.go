package listqueue

import "github.com/timzifer/listqueue/internal/list"

// DeleteMid removes and releases the element at index (n-1)/2, where n is the
// queue length. It returns false on an empty queue.
func (q *Queue) DeleteMid() bool {
	if q.Empty() {
		return false
	}
	head := &q.head
	slow := head.Next()
	fast := slow.Next()
	for fast != head && fast.Next() != head {
		fast = fast.Next().Next()
		slow = slow.Next()
	}
	elementOf(slow).unlinkRelease()
	return true
}

// DeleteDup removes every element whose value occurs more than once in a
// row, keeping none of the copies. The queue is expected to be sorted. It
// returns false only on an empty queue.
func (q *Queue) DeleteDup() bool {
	if q.Empty() {
		return false
	}
	head := &q.head
	for n := head.Next(); n != head; {
		value := elementOf(n).Value
		end := n.Next()
		for end != head && elementOf(end).Value == value {
			end = end.Next()
		}
		if end != n.Next() {
			for n != end {
				next := n.Next()
				elementOf(n).unlinkRelease()
				n = next
			}
		}
		n = end
	}
	return true
}

// Ascend removes every element that has a strictly smaller value somewhere
// to its right and returns the number of elements left.
func (q *Queue) Ascend() int {
	return q.keepMonotonic(func(left, right string) bool { return left > right })
}

// Descend removes every element that has a strictly greater value somewhere
// to its right and returns the number of elements left.
func (q *Queue) Descend() int {
	return q.keepMonotonic(func(left, right string) bool { return left < right })
}

// keepMonotonic treats the part of the queue left of the cursor as a stack of
// kept elements. Before a node is pushed, every kept element that violates
// the order against it is popped and released.
func (q *Queue) keepMonotonic(violates func(left, right string) bool) int {
	if q.Empty() {
		return 0
	}
	if q.head.Singular() {
		return 1
	}
	kept := 0
	list.Each(&q.head, func(n *list.Node[*Element]) bool {
		value := elementOf(n).Value
		for kept > 0 && violates(elementOf(n.Prev()).Value, value) {
			elementOf(n.Prev()).unlinkRelease()
			kept--
		}
		kept++
		return true
	})
	return kept
}
