package sequence

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/sequence/internal/node"
)

const (
	// ErrorInvariantBroken ошибка нарушения внутренней согласованности последовательности.
	ErrorInvariantBroken errors.Const = "sequence invariant broken"
)

// Validate проверка внутренней согласованности. Возвращает ошибку для
// первого найденного нарушения.
func (s *Sequence[T]) Validate() error {
	if l := node.Length(s.head); l != s.count {
		return errors.Wrap(ErrorInvariantBroken, "count mismatch").
			Int("count", s.count).
			Int("reachable", l)
	}

	if (s.head == nil) != (s.count == 0) || (s.tail == nil) != (s.count == 0) {
		return errors.Wrap(ErrorInvariantBroken, "head and tail must be set for non-empty sequence only").
			Int("count", s.count).
			Bool("has-head", s.head != nil).
			Bool("has-tail", s.tail != nil)
	}

	if s.tail != nil && s.tail.Link() != nil {
		return errors.Wrap(ErrorInvariantBroken, "tail has a successor")
	}

	var tailFound, cursorFound, precursorFound bool
	for n := s.head; n != nil; n = n.Link() {
		if n == s.tail {
			tailFound = true
		}
		if n == s.cursor {
			cursorFound = true
		}
		if n == s.precursor {
			precursorFound = true
		}
	}

	if s.tail != nil && !tailFound {
		return errors.Wrap(ErrorInvariantBroken, "tail is not the last node")
	}

	if s.cursor != nil && !cursorFound {
		return errors.Wrap(ErrorInvariantBroken, "cursor is not reachable")
	}

	if s.precursor != nil {
		if !precursorFound {
			return errors.Wrap(ErrorInvariantBroken, "precursor is not reachable")
		}
		if s.precursor.Link() != s.cursor {
			return errors.Wrap(ErrorInvariantBroken, "precursor is not linked to cursor").
				Bool("has-cursor", s.cursor != nil)
		}
	}

	if s.cursor != nil && s.cursor != s.head && s.precursor == nil {
		return errors.Wrap(ErrorInvariantBroken, "cursor is past the head without a precursor")
	}

	return nil
}
