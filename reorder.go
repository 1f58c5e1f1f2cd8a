package listqueue

import "github.com/timzifer/listqueue/internal/list"

// Swap exchanges every two adjacent elements. A trailing odd element stays
// where it is.
func (q *Queue) Swap() {
	if q.Empty() || q.head.Singular() {
		return
	}
	head := &q.head
	for a := head.Next(); a != head && a.Next() != head; a = a.Next() {
		list.MoveTail(a.Next(), a)
	}
}

// Reverse reverses the order of the queue in place.
func (q *Queue) Reverse() {
	if q.Empty() || q.head.Singular() {
		return
	}
	reverseList(&q.head)
}

// reverseList moves every node to the front of head in turn.
func reverseList(head *list.Node[*Element]) {
	list.Each(head, func(n *list.Node[*Element]) bool {
		list.Move(n, head)
		return true
	})
}

// ReverseK reverses each consecutive block of k elements. A trailing block
// shorter than k keeps its order. k <= 1 leaves the queue unchanged.
func (q *Queue) ReverseK(k int) {
	if k <= 1 || q.Empty() {
		return
	}
	remaining := list.Len(&q.head)

	var block list.Node[*Element]
	block.Init()

	left := q.head.Next()
	for ; remaining >= k; remaining -= k {
		right := left
		for i := 1; i < k; i++ {
			right = right.Next()
		}
		prev := left.Prev()

		list.CutRange(&block, left, right)
		reverseList(&block)
		list.SpliceInit(&block, prev)

		// left is now the last node of the block.
		left = left.Next()
	}
}

// Sort orders the queue by byte-wise string comparison, ascending unless
// descend is set.
//
// The first element is used as pivot. Elements ordered strictly before it go
// to one partition and all others, ties included, to the second. Both are
// sorted recursively and joined around the pivot.
func (q *Queue) Sort(descend bool) {
	if q == nil {
		return
	}
	sortList(&q.head, descend)
}

func sortList(head *list.Node[*Element], descend bool) {
	if head.Empty() || head.Singular() {
		return
	}

	pivot := head.Next()
	pivotValue := elementOf(pivot).Value
	list.Del(pivot)

	var before, after list.Node[*Element]
	before.Init()
	after.Init()

	list.Each(head, func(n *list.Node[*Element]) bool {
		value := elementOf(n).Value
		if (descend && value > pivotValue) || (!descend && value < pivotValue) {
			list.MoveTail(n, &before)
		} else {
			list.MoveTail(n, &after)
		}
		return true
	})

	sortList(&before, descend)
	sortList(&after, descend)

	list.SpliceTailInit(&before, head)
	list.AddTail(pivot, head)
	list.SpliceTailInit(&after, head)
}
