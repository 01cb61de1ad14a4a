package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirkon/errors"
	"github.com/sirkon/message"

	"github.com/sirkon/sequence/internal/script"
)

type cliArgs struct {
	Script string `arg:"" type:"existingfile" help:"Сценарий операций над последовательностью."`
	Output string `short:"o" type:"path" help:"Файл для вывода, по умолчанию stdout."`
}

func main() {
	var args cliArgs
	kong.Parse(
		&args,
		kong.Name("seqdemo"),
		kong.Description("Исполнение сценария операций над последовательностью строк."),
	)

	if err := run(args); err != nil {
		message.Critical(errors.Wrap(err, "run script").Str("script", args.Script))
	}
}

func run(args cliArgs) (err error) {
	src, err := os.Open(args.Script)
	if err != nil {
		return errors.Wrap(err, "open script")
	}
	defer func() {
		_ = src.Close()
	}()

	var out io.Writer = os.Stdout
	if args.Output != "" {
		file, err := os.Create(args.Output)
		if err != nil {
			return errors.Wrap(err, "create output file").Str("output", args.Output)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = errors.Wrap(cerr, "close output file").Str("output", args.Output)
			}
		}()
		out = file
	}

	r := script.New(out, stderrLogger{})
	return r.Run(src)
}
