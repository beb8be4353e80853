// SPDX-License-Identifier: Apache-2.0

package farm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/pisilinux/farmctl/internal/core"
)

// Menu prompts the operator for one lifecycle operation and dispatches it.
// Invoked when farmctl runs without a subcommand. An unrecognized selection
// is a usage error and never reaches the runtime.
func Menu(ctx context.Context) error {
	op, err := selectOperation()
	if err != nil {
		return err
	}

	return RunOperation(ctx, op)
}

func selectOperation() (core.Operation, error) {
	if interactiveTerminal() {
		return selectWithPrompt()
	}

	return selectFromLine(os.Stdin, os.Stdout)
}

// interactiveTerminal reports whether stdin is attached to a terminal.
func interactiveTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func selectWithPrompt() (core.Operation, error) {
	ops := core.Operations()
	options := make([]huh.Option[core.Operation], 0, len(ops))
	for _, op := range ops {
		options = append(options, huh.NewOption(fmt.Sprintf("%d) %s", int(op), op), op))
	}

	var op core.Operation
	err := huh.NewSelect[core.Operation]().
		Title("Farm operations").
		Options(options...).
		Value(&op).
		Run()
	if err != nil {
		return 0, core.UnrecognizedSelectionError.Wrap(err, "operation selection aborted")
	}

	return op, nil
}

// selectFromLine reads one selection from r. The number or the name of the
// operation is accepted.
func selectFromLine(r io.Reader, w io.Writer) (core.Operation, error) {
	fmt.Fprintln(w, "Farm operations:")
	for _, op := range core.Operations() {
		fmt.Fprintf(w, "  %d) %s\n", int(op), op)
	}
	fmt.Fprint(w, "Selection: ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return 0, core.UnrecognizedSelectionError.New("no selection provided")
	}

	return core.ParseOperation(line)
}
