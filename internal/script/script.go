// Package script исполнение сценариев операций над последовательностью строк.
//
// Сценарий текстовый, одна команда на строку, пустые строки и строки начинающиеся
// с # пропускаются. Значение для insert и attach это остаток строки после команды.
package script

import (
	"bufio"
	"io"
	"strings"

	"github.com/sirkon/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/sirkon/sequence/internal/sequence"
)

// New конструктор исполнителя сценариев с выводом в out.
func New(out io.Writer, log Logger) *Runner {
	return &Runner{
		seq:   sequence.New[string](),
		saved: sequence.New[string](),
		out:   out,
		log:   log,
	}
}

// Runner исполнитель сценариев.
type Runner struct {
	seq   *sequence.Sequence[string]
	saved *sequence.Sequence[string]
	out   io.Writer
	log   Logger
}

// Sequence последовательность над которой исполняются команды.
func (r *Runner) Sequence() *sequence.Sequence[string] {
	return r.seq
}

// Commands список поддерживаемых команд.
func Commands() []string {
	res := maps.Keys(commands)
	slices.Sort(res)
	return res
}

// Run исполнение сценария читаемого из src.
func (r *Runner) Run(src io.Reader) error {
	scanner := bufio.NewScanner(src)

	var lineNo int
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		cmd, ok := commands[name]
		switch {
		case !ok:
			r.log.UnknownCommand(lineNo, name)
			continue
		case cmd.needArg && arg == "":
			r.log.MissingArgument(lineNo, name)
			continue
		case cmd.needItem && !r.seq.IsItem():
			r.log.NoCurrentItem(lineNo, name)
			continue
		}

		if err := cmd.run(r, arg); err != nil {
			return errors.Wrap(err, "run command").Int("line", lineNo).Str("command", name)
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read script").Int("line", lineNo)
	}

	return nil
}
