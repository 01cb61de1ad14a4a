package script

import (
	"fmt"

	"github.com/sirkon/errors"

	"github.com/sirkon/sequence/internal/seqprint"
)

type command struct {
	needArg  bool
	needItem bool
	run      func(r *Runner, arg string) error
}

var commands = map[string]command{
	"start": {
		run: func(r *Runner, _ string) error {
			r.seq.Start()
			return nil
		},
	},
	"advance": {
		needItem: true,
		run: func(r *Runner, _ string) error {
			r.seq.Advance()
			return nil
		},
	},
	"insert": {
		needArg: true,
		run: func(r *Runner, arg string) error {
			r.seq.Insert(arg)
			return nil
		},
	},
	"attach": {
		needArg: true,
		run: func(r *Runner, arg string) error {
			r.seq.Attach(arg)
			return nil
		},
	},
	"remove": {
		needItem: true,
		run: func(r *Runner, _ string) error {
			r.seq.RemoveCurrent()
			return nil
		},
	},
	"current": {
		needItem: true,
		run: func(r *Runner, _ string) error {
			if _, err := fmt.Fprintf(r.out, "current: %s\n", r.seq.Current()); err != nil {
				return errors.Wrap(err, "write current item")
			}
			return nil
		},
	},
	"size": {
		run: func(r *Runner, _ string) error {
			if _, err := fmt.Fprintf(r.out, "size: %d\n", r.seq.Size()); err != nil {
				return errors.Wrap(err, "write size")
			}
			return nil
		},
	},
	"print": {
		run: func(r *Runner, _ string) error {
			// Печатаем копию, чтобы не сбивать курсор.
			if err := seqprint.Fprint[string](r.out, r.seq.Clone()); err != nil {
				return errors.Wrap(err, "print sequence")
			}
			return nil
		},
	},
	"save": {
		run: func(r *Runner, _ string) error {
			r.saved = r.seq.Clone()
			return nil
		},
	},
	"restore": {
		run: func(r *Runner, _ string) error {
			r.seq.Assign(r.saved)
			return nil
		},
	},
	"clear": {
		run: func(r *Runner, _ string) error {
			r.seq.Clear()
			return nil
		},
	},
	"check": {
		run: func(r *Runner, _ string) error {
			res := "ok"
			if err := r.seq.Validate(); err != nil {
				res = err.Error()
			}
			if _, err := fmt.Fprintln(r.out, res); err != nil {
				return errors.Wrap(err, "write check result")
			}
			return nil
		},
	},
}
