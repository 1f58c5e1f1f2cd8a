package listqueue

import (
	"errors"

	"github.com/timzifer/listqueue/internal/list"
)

// ErrNilQueue is returned by helpers that need a live queue handle.
var ErrNilQueue = errors.New("listqueue: nil queue")

// Queue is a string queue kept in a circular doubly-linked list with a
// sentinel head.
//
// A Queue is not safe for concurrent use. Callers sharing a queue between
// goroutines must serialise access themselves.
type Queue struct {
	head list.Node[*Element]
}

// New creates an empty queue.
func New(opts ...Option) *Queue {
	q := &Queue{}
	q.head.Init()

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	for _, v := range o.values {
		q.InsertTail(v)
	}
	return q
}

// Free releases every element of the queue. The queue is left empty. Calling
// Free on a nil queue does nothing.
func (q *Queue) Free() {
	if q == nil {
		return
	}
	list.Each(&q.head, func(n *list.Node[*Element]) bool {
		elementOf(n).unlinkRelease()
		return true
	})
}

// InsertHead stores a copy of s at the front of the queue. It returns false
// without touching the queue when q is nil.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}
	e := newElement(s)
	list.Add(&e.link, &q.head)
	return true
}

// InsertTail stores a copy of s at the back of the queue. It returns false
// without touching the queue when q is nil.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}
	e := newElement(s)
	list.AddTail(&e.link, &q.head)
	return true
}

// RemoveHead unlinks the first element and hands it to the caller. If buf is
// not empty, the element's value is copied into it, truncated to len(buf)-1
// bytes and followed by a zero byte. It returns nil on an empty or nil queue.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q.Empty() {
		return nil
	}
	return q.remove(q.head.Next(), buf)
}

// RemoveTail is RemoveHead for the last element.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q.Empty() {
		return nil
	}
	return q.remove(q.head.Prev(), buf)
}

func (q *Queue) remove(n *list.Node[*Element], buf []byte) *Element {
	e := elementOf(n)
	list.Del(n)
	copyValue(buf, e.Value)
	return e
}

func copyValue(buf []byte, value string) {
	if len(buf) == 0 {
		return
	}
	n := copy(buf[:len(buf)-1], value)
	buf[n] = 0
}

// Empty reports whether the queue holds no elements. A nil queue is empty.
func (q *Queue) Empty() bool {
	return q == nil || q.head.Empty()
}

// Size counts the elements by walking the queue.
func (q *Queue) Size() int {
	if q.Empty() {
		return 0
	}
	return list.Len(&q.head)
}

// Values returns a copy of the stored strings, front to back.
func (q *Queue) Values() []string {
	if q.Empty() {
		return nil
	}
	result := make([]string, 0, list.Len(&q.head))
	list.Each(&q.head, func(n *list.Node[*Element]) bool {
		result = append(result, elementOf(n).Value)
		return true
	})
	return result
}
