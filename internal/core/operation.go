// SPDX-License-Identifier: Apache-2.0

package core

import (
	"strconv"
	"strings"
)

// Operation is the operator's menu selection. It exists for exactly one
// program run: chosen at the prompt, dispatched, discarded.
type Operation int

const (
	OpStart Operation = iota + 1
	OpStop
	OpInstall
	OpDelete
	OpReinstall
)

func (op Operation) String() string {
	switch op {
	case OpStart:
		return "start"
	case OpStop:
		return "stop"
	case OpInstall:
		return "install"
	case OpDelete:
		return "delete"
	case OpReinstall:
		return "reinstall"
	default:
		return "unknown"
	}
}

// Operations lists the menu operations in display order.
func Operations() []Operation {
	return []Operation{OpStart, OpStop, OpInstall, OpDelete, OpReinstall}
}

// ParseOperation maps a line of operator input to an operation. Both the
// operation number ("3") and the operation name ("install") are accepted.
// Anything else yields UnrecognizedSelectionError and must not trigger any
// runtime mutation.
func ParseOperation(input string) (Operation, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return 0, UnrecognizedSelectionError.New("empty selection")
	}

	if n, err := strconv.Atoi(s); err == nil {
		op := Operation(n)
		if op < OpStart || op > OpReinstall {
			return 0, UnrecognizedSelectionError.New("selection out of range: %d", n)
		}
		return op, nil
	}

	for _, op := range Operations() {
		if op.String() == s {
			return op, nil
		}
	}

	return 0, UnrecognizedSelectionError.New("unrecognized selection: %q", input)
}
