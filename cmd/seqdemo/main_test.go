package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirkon/errors"

	"github.com/sirkon/sequence/internal/tlog"
)

func TestRun(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.txt")
	if err := run(cliArgs{Script: filepath.Join("testdata", "scenario.txt"), Output: output}); err != nil {
		tlog.Error(t, errors.Wrap(err, "run scenario"))
		return
	}

	data, err := os.ReadFile(output)
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "read output"))
		return
	}

	const want = "5 7 10\n5 10\nsize: 2\nok\n"
	if string(data) != want {
		t.Errorf("unexpected output %q", string(data))
	}
}

func TestRunMissingScript(t *testing.T) {
	err := run(cliArgs{Script: filepath.Join(t.TempDir(), "missing.txt")})
	if err == nil {
		t.Error("missing script must be an error")
		return
	}
	tlog.Log(t, err)
}
