package sequence

import "github.com/sirkon/sequence/internal/node"

// Clone независимая глубокая копия с курсором в той же позиции.
func (s *Sequence[T]) Clone() *Sequence[T] {
	res := New[T]()
	res.Assign(s)
	return res
}

// Assign замена содержимого глубокой копией src. Курсор ставится в ту же
// позицию, что и в src. Присваивание самому себе ничего не делает.
func (s *Sequence[T]) Assign(src *Sequence[T]) {
	if s == src {
		return
	}

	s.Clear()

	switch {
	case src.count == 0:
	case src.count == 1 || src.cursor == src.head:
		s.head, s.tail = node.Copy(src.head)
		if src.cursor == src.head {
			s.cursor = s.head
		} else {
			s.precursor = s.head
		}
	default:
		// Копируем двумя кусками: до текущего элемента и начиная с него.
		s.head, s.precursor = node.Piece(src.head, src.cursor)
		if src.cursor != nil {
			s.cursor, s.tail = node.Piece(src.cursor, nil)
		} else {
			s.tail = s.precursor
		}
		s.precursor.SetLink(s.cursor)
	}

	s.count = src.count
}
