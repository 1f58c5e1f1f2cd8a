package listqueue

import (
	"github.com/timzifer/listqueue/internal/list"
	"github.com/timzifer/listqueue/internal/telemetry"
)

// Element is one string stored in a Queue.
//
// An Element belongs to exactly one queue at a time. Elements returned by
// RemoveHead and RemoveTail are owned by the caller, who must call Release
// once done with them.
type Element struct {
	Value string

	link     list.Node[*Element]
	released bool
}

func newElement(s string) *Element {
	e := &Element{Value: s}
	e.link.Bind(e)
	telemetry.TrackAlloc()
	return e
}

func elementOf(n *list.Node[*Element]) *Element {
	return n.Entry()
}

// Release drops the element's payload. Releasing an element twice is a no-op.
func (e *Element) Release() {
	if e == nil || e.released {
		return
	}
	e.released = true
	e.Value = ""
	telemetry.TrackRelease()
}

// unlinkRelease removes e from its queue and releases it.
func (e *Element) unlinkRelease() {
	list.Del(&e.link)
	e.Release()
}
