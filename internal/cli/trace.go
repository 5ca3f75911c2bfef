package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/failtrace/internal/presentation/tui"
	"github.com/aretw0/failtrace/internal/runtime"
	"github.com/aretw0/failtrace/pkg/domain"
	"golang.org/x/term"
)

// DefaultSessionID is used when the caller does not name a session.
const DefaultSessionID = "default"

// TraceOptions configures an interactive trace.
type TraceOptions struct {
	SessionID string
	// Fresh discards any stored session before starting.
	Fresh bool
	In    io.Reader
	Out   io.Writer
	// Render turns node Markdown into terminal output. Nil picks one from Out.
	Render func(string) (string, error)
}

// Answer resolves input (option number, target id or label) against the
// current node of a stored session and persists the step.
func (a *App) Answer(ctx context.Context, sessionID, input string) (*domain.Session, error) {
	s, err := a.Sessions.LoadOrStart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	edge, err := runtime.Resolve(a.Engine.CurrentNode(s), input)
	if err != nil {
		return nil, err
	}
	return a.Sessions.Advance(ctx, sessionID, edge.Target)
}

// Trace runs the question loop until the user quits or input ends.
// Every step is persisted, so an interrupted trace resumes where it stopped.
func (a *App) Trace(ctx context.Context, opts TraceOptions) error {
	if opts.SessionID == "" {
		opts.SessionID = DefaultSessionID
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Render == nil {
		opts.Render = rendererFor(opts.Out)
	}
	out := opts.Out

	if opts.Fresh {
		if err := a.Sessions.Delete(ctx, opts.SessionID); err != nil {
			return err
		}
	}

	s, err := a.Sessions.LoadOrStart(ctx, opts.SessionID)
	if err != nil {
		return err
	}
	if len(s.Path) > 1 {
		printSystemMessage(out, "Resuming session '%s' at '%s'.", s.ID, s.Current())
	}

	scanner := bufio.NewScanner(opts.In)
	for {
		node := a.Engine.CurrentNode(s)
		text, err := opts.Render(tui.NodeMarkdown(node, a.Engine.History(s)))
		if err != nil {
			return fmt.Errorf("failed to render node %s: %w", node.ID, err)
		}
		fmt.Fprint(out, text)
		if node.IsTerminal() {
			printSystemMessage(out, "Reached '%s'. Type 'r' to start over or 'q' to quit.", node.ID)
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "q", "quit", "exit":
			printSystemMessage(out, "Stopped at '%s'.", s.Current())
			return nil
		case "r", "reset":
			if s, err = a.Sessions.Reset(ctx, opts.SessionID); err != nil {
				return err
			}
			continue
		}

		next, err := a.Answer(ctx, opts.SessionID, input)
		if errors.Is(err, domain.ErrInvalidTransition) {
			printSystemMessage(out, "'%s' is not an option here.", input)
			continue
		}
		if err != nil {
			return err
		}
		s = next
	}
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func rendererFor(w io.Writer) func(string) (string, error) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return tui.NewRenderer()
	}
	return tui.PlainRenderer
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
