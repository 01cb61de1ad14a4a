package node

import (
	"testing"

	"github.com/sirkon/deepequal"
)

func chain(vs ...int) (head, tail *Node[int]) {
	for i := len(vs) - 1; i >= 0; i-- {
		head = HeadInsert(head, vs[i])
		if tail == nil {
			tail = head
		}
	}

	return head, tail
}

func values[T any](head *Node[T]) []T {
	var res []T
	for n := head; n != nil; n = n.Link() {
		res = append(res, n.Value())
	}

	return res
}

func TestNode(t *testing.T) {
	n := New(1, nil)
	if n.Value() != 1 || n.Link() != nil {
		t.Fatalf("unexpected fresh node state %d %p", n.Value(), n.Link())
	}

	m := New(2, nil)
	n.SetLink(m)
	n.SetValue(3)
	if n.Value() != 3 {
		t.Errorf("expected value 3 got %d", n.Value())
	}
	if n.Link() != m {
		t.Error("link must be the node just set")
	}
}

func TestChain(t *testing.T) {
	t.Run("head-insert", func(t *testing.T) {
		head, tail := chain(1, 2, 3)
		deepequal.SideBySide(t, "chain", []int{1, 2, 3}, values(head))
		if tail.Link() != nil || tail.Value() != 3 {
			t.Error("tail must be the last node")
		}
		if l := Length(head); l != 3 {
			t.Errorf("expected length 3 got %d", l)
		}
	})

	t.Run("insert-after", func(t *testing.T) {
		head, tail := chain(1, 3)
		n := InsertAfter(head, 2)
		if n.Value() != 2 || n.Link() != tail {
			t.Error("inserted node must sit between head and tail")
		}
		last := InsertAfter(tail, 4)
		if last.Link() != nil {
			t.Error("node inserted after the tail must end the chain")
		}
		deepequal.SideBySide(t, "chain", []int{1, 2, 3, 4}, values(head))
	})

	t.Run("head-remove", func(t *testing.T) {
		head, _ := chain(1, 2)
		old := head
		head = HeadRemove(head)
		if old.Link() != nil {
			t.Error("removed node must be unlinked")
		}
		deepequal.SideBySide(t, "chain", []int{2}, values(head))
		head = HeadRemove(head)
		if head != nil {
			t.Error("chain must be empty")
		}
		if HeadRemove[int](nil) != nil {
			t.Error("head remove of an empty chain must stay empty")
		}
	})

	t.Run("remove-after", func(t *testing.T) {
		head, tail := chain(1, 2, 3)
		RemoveAfter(head)
		if head.Link() != tail {
			t.Error("head must be linked to the tail")
		}
		RemoveAfter(tail)
		deepequal.SideBySide(t, "chain", []int{1, 3}, values(head))
	})

	t.Run("clear", func(t *testing.T) {
		head, _ := chain(1, 2, 3)
		nodes := []*Node[int]{head, head.Link(), head.Link().Link()}
		Clear(head)
		for i, n := range nodes {
			if n.Link() != nil || n.Value() != 0 {
				t.Errorf("node %d must be released", i)
			}
		}
		Clear[int](nil)
	})
}

func TestPiece(t *testing.T) {
	head, tail := chain(1, 2, 3, 4)
	mid := head.Link().Link()

	tests := []struct {
		name  string
		start *Node[int]
		end   *Node[int]
		want  []int
	}{
		{
			name:  "whole",
			start: head,
			end:   nil,
			want:  []int{1, 2, 3, 4},
		},
		{
			name:  "prefix",
			start: head,
			end:   mid,
			want:  []int{1, 2},
		},
		{
			name:  "suffix",
			start: mid,
			end:   nil,
			want:  []int{3, 4},
		},
		{
			name:  "last",
			start: tail,
			end:   nil,
			want:  []int{4},
		},
		{
			name:  "empty-range",
			start: mid,
			end:   mid,
			want:  nil,
		},
		{
			name:  "empty-source",
			start: nil,
			end:   nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ph, pt := Piece(tt.start, tt.end)
			deepequal.SideBySide(t, "piece", tt.want, values(ph))
			if len(tt.want) == 0 {
				if ph != nil || pt != nil {
					t.Error("empty piece must have no head and no tail")
				}
				return
			}

			if pt.Link() != nil {
				t.Error("piece tail must end the piece")
			}
			if pt.Value() != tt.want[len(tt.want)-1] {
				t.Errorf("piece tail must hold %d, got %d", tt.want[len(tt.want)-1], pt.Value())
			}
			for n := ph; n != nil; n = n.Link() {
				for o := head; o != nil; o = o.Link() {
					if n == o {
						t.Fatal("piece must not share nodes with the source")
					}
				}
			}
		})
	}

	t.Run("copy", func(t *testing.T) {
		ch, ct := Copy(head)
		ch.SetValue(10)
		deepequal.SideBySide(t, "copy", []int{10, 2, 3, 4}, values(ch))
		deepequal.SideBySide(t, "source", []int{1, 2, 3, 4}, values(head))
		if ct.Value() != 4 {
			t.Errorf("copy tail must hold 4, got %d", ct.Value())
		}
	})
}
