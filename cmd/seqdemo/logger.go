package main

import (
	"github.com/sirkon/message"

	"github.com/sirkon/sequence/internal/script"
)

type stderrLogger struct{}

func (stderrLogger) UnknownCommand(line int, command string) {
	message.Warningf("line %d: unknown command %q, supported are %v", line, command, script.Commands())
}

func (stderrLogger) MissingArgument(line int, command string) {
	message.Warningf("line %d: command %s needs an item", line, command)
}

func (stderrLogger) NoCurrentItem(line int, command string) {
	message.Warningf("line %d: no current item for %s, skipped", line, command)
}

var _ script.Logger = stderrLogger{}
