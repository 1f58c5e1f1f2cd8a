package listqueue

import (
	"github.com/gammazero/deque"

	"github.com/timzifer/listqueue/internal/list"
)

// Context tracks one queue taking part in a Chain, together with its cached
// element count.
type Context struct {
	Queue *Queue
	Size  int

	chain list.Node[*Context]
}

// Chain is a list of queue contexts that can be merged into one queue.
type Chain struct {
	head list.Node[*Context]
}

// NewChain creates an empty chain.
func NewChain() *Chain {
	c := &Chain{}
	c.head.Init()
	return c
}

// Add appends q to the chain. The chain references q but does not copy it.
func (c *Chain) Add(q *Queue) (*Context, error) {
	if q == nil {
		return nil, ErrNilQueue
	}
	ctx := &Context{Queue: q, Size: q.Size()}
	ctx.chain.Bind(ctx)
	list.AddTail(&ctx.chain, &c.head)
	return ctx, nil
}

// Len returns the number of contexts in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return list.Len(&c.head)
}

// First returns the first context, or nil for an empty chain.
func (c *Chain) First() *Context {
	if c == nil || c.head.Empty() {
		return nil
	}
	return c.head.Next().Entry()
}

// Contexts returns the contexts in chain order.
func (c *Chain) Contexts() []*Context {
	if c == nil {
		return nil
	}
	var result []*Context
	list.Each(&c.head, func(n *list.Node[*Context]) bool {
		result = append(result, n.Entry())
		return true
	})
	return result
}

// Free releases every queue in the chain and empties it.
func (c *Chain) Free() {
	if c == nil {
		return
	}
	list.Each(&c.head, func(n *list.Node[*Context]) bool {
		ctx := n.Entry()
		ctx.Queue.Free()
		ctx.Size = 0
		list.Del(n)
		return true
	})
}

// Merge moves the elements of every queue in the chain into the first queue
// and sorts it, ascending unless descend is set. Contexts without a queue are
// skipped. Absorbed contexts are left with Size 0 and moved to the tail of
// the chain. Merge returns the size of the combined queue, or 0 when the
// chain holds no queue.
func (c *Chain) Merge(descend bool) int {
	if c == nil || c.head.Empty() {
		return 0
	}

	var work deque.Deque[*Context]
	list.Each(&c.head, func(n *list.Node[*Context]) bool {
		if ctx := n.Entry(); ctx.Queue != nil {
			work.PushBack(ctx)
		}
		return true
	})
	if work.Len() == 0 {
		return 0
	}

	first := work.PopFront()
	for work.Len() > 0 {
		ctx := work.PopFront()
		if ctx.Queue != first.Queue {
			list.SpliceTailInit(&ctx.Queue.head, &first.Queue.head)
		}
		ctx.Size = 0
		list.MoveTail(&ctx.chain, &c.head)
	}

	first.Queue.Sort(descend)
	first.Size = first.Queue.Size()
	return first.Size
}
