// Package seqprint вывод содержимого последовательности.
package seqprint

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirkon/errors"
)

// Traversable последовательность, которую можно обойти курсором.
type Traversable[T any] interface {
	Start()
	Advance()
	IsItem() bool
	Current() T
	Size() int
}

// Fprint вывод элементов через пробел с переводом строки в конце.
// Курсор s после вывода находится за последним элементом, если нужно
// сохранить его положение, передавайте копию.
func Fprint[T any](w io.Writer, s Traversable[T]) error {
	bw := bufio.NewWriter(w)

	var no int
	for s.Start(); s.IsItem(); s.Advance() {
		if no > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return errors.Wrap(err, "write separator").Int("item-no", no)
			}
		}
		if _, err := fmt.Fprint(bw, s.Current()); err != nil {
			return errors.Wrap(err, "write item").Int("item-no", no)
		}
		no++
	}

	if err := bw.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "write line end")
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flush output").Int("size", s.Size())
	}

	return nil
}

// Sprint то же, что и Fprint, но в строку.
func Sprint[T any](s Traversable[T]) string {
	var b strings.Builder
	_ = Fprint[T](&b, s) // strings.Builder не возвращает ошибок
	return b.String()
}
