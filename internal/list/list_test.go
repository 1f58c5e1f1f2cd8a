package list

import "testing"

type item struct {
	value int
	link  Node[*item]
}

func newItem(v int) *item {
	it := &item{value: v}
	it.link.Bind(it)
	return it
}

func collect(head *Node[*item]) []int {
	var out []int
	Each(head, func(n *Node[*item]) bool {
		out = append(out, n.Entry().value)
		return true
	})
	return out
}

func checkRing(t *testing.T, head *Node[*item]) {
	t.Helper()
	n := head
	for {
		if n.next.prev != n || n.prev.next != n {
			t.Fatalf("broken links around node %p", n)
		}
		n = n.next
		if n == head {
			return
		}
	}
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddAndDel(t *testing.T) {
	var head Node[*item]
	head.Init()

	if !head.Empty() || head.Singular() {
		t.Fatalf("expected fresh head to be empty")
	}

	one, two, three := newItem(1), newItem(2), newItem(3)
	AddTail(&two.link, &head)
	if !head.Singular() {
		t.Fatalf("expected singular list after one insert")
	}
	Add(&one.link, &head)
	AddTail(&three.link, &head)
	checkRing(t, &head)

	if got := collect(&head); !equal(got, []int{1, 2, 3}) {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
	if got := Len(&head); got != 3 {
		t.Fatalf("expected length 3, got %d", got)
	}

	Del(&two.link)
	checkRing(t, &head)
	if got := collect(&head); !equal(got, []int{1, 3}) {
		t.Fatalf("expected [1 3] after delete, got %v", got)
	}
	if two.link.Next() != &two.link || two.link.Prev() != &two.link {
		t.Fatalf("deleted node should be a standalone ring")
	}
}

func TestMoveAndEachSafe(t *testing.T) {
	var head Node[*item]
	head.Init()
	for i := 1; i <= 4; i++ {
		AddTail(&newItem(i).link, &head)
	}

	Each(&head, func(n *Node[*item]) bool {
		Move(n, &head)
		return true
	})
	checkRing(t, &head)
	if got := collect(&head); !equal(got, []int{4, 3, 2, 1}) {
		t.Fatalf("expected reversed order, got %v", got)
	}

	MoveTail(head.Next(), &head)
	if got := collect(&head); !equal(got, []int{3, 2, 1, 4}) {
		t.Fatalf("expected [3 2 1 4], got %v", got)
	}

	visited := 0
	Each(&head, func(n *Node[*item]) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Fatalf("expected iteration to stop after 2 nodes, got %d", visited)
	}
}

func TestSplice(t *testing.T) {
	var a, b Node[*item]
	a.Init()
	b.Init()
	AddTail(&newItem(1).link, &a)
	AddTail(&newItem(2).link, &a)
	AddTail(&newItem(3).link, &b)
	AddTail(&newItem(4).link, &b)

	SpliceTailInit(&b, &a)
	checkRing(t, &a)
	if !b.Empty() {
		t.Fatalf("expected source list to be empty after SpliceTailInit")
	}
	if got := collect(&a); !equal(got, []int{1, 2, 3, 4}) {
		t.Fatalf("expected [1 2 3 4], got %v", got)
	}

	AddTail(&newItem(0).link, &b)
	SpliceInit(&b, &a)
	checkRing(t, &a)
	if got := collect(&a); !equal(got, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("expected [0 1 2 3 4], got %v", got)
	}

	var c Node[*item]
	c.Init()
	SpliceTail(&c, &a)
	SpliceInit(&c, &a)
	checkRing(t, &a)
	if got := Len(&a); got != 5 {
		t.Fatalf("splicing an empty list changed length to %d", got)
	}
}

func TestCutRange(t *testing.T) {
	var head, dst Node[*item]
	head.Init()
	dst.Init()
	items := make([]*item, 0, 5)
	for i := 1; i <= 5; i++ {
		it := newItem(i)
		items = append(items, it)
		AddTail(&it.link, &head)
	}

	CutRange(&dst, &items[1].link, &items[3].link)
	checkRing(t, &head)
	checkRing(t, &dst)

	if got := collect(&head); !equal(got, []int{1, 5}) {
		t.Fatalf("expected [1 5] left behind, got %v", got)
	}
	if got := collect(&dst); !equal(got, []int{2, 3, 4}) {
		t.Fatalf("expected [2 3 4] in cut list, got %v", got)
	}

	SpliceInit(&dst, &items[0].link)
	checkRing(t, &head)
	if got := collect(&head); !equal(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("expected run restored in place, got %v", got)
	}
}
