package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	ListVibes(ctx context.Context) error
	AddVibe(ctx context.Context, args []string) error
	DeleteVibe(ctx context.Context, args []string) error
	ListGoals(ctx context.Context) error
	AddGoal(ctx context.Context, args []string) error
	SetDone(ctx context.Context, args []string, done bool) error
	DeleteGoal(ctx context.Context, args []string) error
	Reload(ctx context.Context) error
	Export(ctx context.Context) error
}

const helpText = `Available commands:
  vibes                 list vibes, newest first
  addvibe [mood]        log how you feel (asks for mood and note)
  delvibe <n>           delete vibe number n
  goals                 list goals, newest first
  addgoal [text]        add a goal
  done <n> / undo <n>   mark goal n completed / not completed
  delgoal <n>           delete goal number n
  reload                fetch both lists again
  export                write a snapshot to object storage
  exit | quit           leave the program`

// runREPL starts a simple read–eval–print loop for the vibe tracker client.
//
// It reads a line from reader, parses the first token as the command and the
// rest as arguments, and dispatches to methods on 'a'. Commands that need
// more input read it from the same reader. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Errors returned by command handlers are printed and the loop continues;
// nothing is retried.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if statusFn != nil {
			fmt.Fprintf(w, "vibes %s> ", statusFn())
		}
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		err = nil
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "vibes":
			err = a.ListVibes(ctx)

		case "addvibe":
			err = a.AddVibe(ctx, args)

		case "delvibe":
			err = a.DeleteVibe(ctx, args)

		case "goals":
			err = a.ListGoals(ctx)

		case "addgoal":
			err = a.AddGoal(ctx, args)

		case "done":
			err = a.SetDone(ctx, args, true)

		case "undo":
			err = a.SetDone(ctx, args, false)

		case "delgoal":
			err = a.DeleteGoal(ctx, args)

		case "reload":
			err = a.Reload(ctx)

		case "export":
			err = a.Export(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
