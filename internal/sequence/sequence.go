package sequence

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/sequence/internal/node"
)

const (
	// ErrorNoCurrentItem ошибка нарушения контракта: операция требует текущего элемента.
	ErrorNoCurrentItem errors.Const = "no current item"
)

// New конструктор пустой последовательности.
func New[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// Sequence последовательность поверх односвязного списка с единственным курсором,
// указывающим на текущий элемент. Нулевое значение готово к использованию.
//
// Advance, Current и RemoveCurrent требуют наличия текущего элемента и паникуют
// при его отсутствии, это ошибка программиста. Перед вызовом надо проверять IsItem.
//
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Sequence[T any] struct {
	head      *node.Node[T] // Единственная владеющая ссылка на цепочку.
	tail      *node.Node[T]
	cursor    *node.Node[T]
	precursor *node.Node[T] // Узел перед cursor, nil если cursor первый.
	count     int
}

// Start установка курсора на первый элемент.
func (s *Sequence[T]) Start() {
	s.cursor = s.head
	s.precursor = nil
}

// Advance перевод курсора на следующий элемент. Переход за последний
// элемент оставляет последовательность без текущего элемента.
func (s *Sequence[T]) Advance() {
	s.mustHaveItem("advance")

	s.precursor = s.cursor
	s.cursor = s.cursor.Link()
}

// IsItem проверка наличия текущего элемента.
func (s *Sequence[T]) IsItem() bool {
	return s.cursor != nil
}

// Current значение текущего элемента.
func (s *Sequence[T]) Current() T {
	s.mustHaveItem("current")

	return s.cursor.Value()
}

// Size количество элементов.
func (s *Sequence[T]) Size() int {
	return s.count
}

// Insert вставка значения перед текущим элементом, либо в начало при отсутствии
// текущего элемента. Вставленный элемент становится текущим.
func (s *Sequence[T]) Insert(v T) {
	if s.cursor == nil || s.precursor == nil {
		s.head = node.HeadInsert(s.head, v)
		s.cursor = s.head
		s.precursor = nil
		if s.count == 0 {
			s.tail = s.head
		}
	} else {
		s.cursor = node.InsertAfter(s.precursor, v)
	}

	s.count++
}

// Attach вставка значения после текущего элемента, либо в конец при отсутствии
// текущего элемента. Вставленный элемент становится текущим.
func (s *Sequence[T]) Attach(v T) {
	switch {
	case s.cursor != nil:
		wasLast := s.cursor == s.tail
		s.precursor = s.cursor
		s.cursor = node.InsertAfter(s.cursor, v)
		if wasLast {
			s.tail = s.cursor
		}
	case s.head == nil:
		s.head = node.HeadInsert(s.head, v)
		s.cursor = s.head
		s.tail = s.head
		s.precursor = nil
	default:
		s.precursor = s.tail
		s.cursor = node.InsertAfter(s.tail, v)
		s.tail = s.cursor
	}

	s.count++
}

// RemoveCurrent удаление текущего элемента. Текущим становится следующий за ним,
// если таковой есть.
func (s *Sequence[T]) RemoveCurrent() {
	s.mustHaveItem("remove current")

	if s.cursor == s.head {
		s.head = node.HeadRemove(s.head)
		s.cursor = s.head
		s.precursor = nil
		if s.head == nil {
			s.tail = nil
		}
	} else {
		if s.cursor == s.tail {
			s.tail = s.precursor
		}
		s.cursor = s.cursor.Link()
		node.RemoveAfter(s.precursor)
	}

	s.count--
}

// Clear освобождение всех узлов и сброс в пустое состояние.
func (s *Sequence[T]) Clear() {
	node.Clear(s.head)
	*s = Sequence[T]{}
}

func (s *Sequence[T]) mustHaveItem(op string) {
	if s.cursor != nil {
		return
	}

	panic(errors.Wrap(ErrorNoCurrentItem, op).Int("size", s.count))
}
