// Package session runs the interactive command loop for one player.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"unicode"

	"github.com/pixil98/go-dungeon/internal/commands"
	"github.com/pixil98/go-dungeon/internal/game"
)

const (
	banner = "DungeonMini. 'help' — команды."
	prompt = "> "
)

// Session reads commands line by line and executes them against the game
// state it owns. One command, including a whole fight, finishes before the
// next line is read.
type Session struct {
	in       io.Reader
	out      io.Writer
	state    *game.State
	registry *commands.Registry

	terminated bool
	exitCode   int
}

func NewSession(state *game.State, registry *commands.Registry, in io.Reader, out io.Writer) *Session {
	return &Session{
		in:       in,
		out:      out,
		state:    state,
		registry: registry,
	}
}

// State returns the game state driven by this session.
func (s *Session) State() *game.State {
	return s.state
}

// Terminated reports whether a command ended the session.
func (s *Session) Terminated() bool {
	return s.terminated
}

// ExitCode is the process status requested by the command that ended the
// session. It is 0 when input simply ran out.
func (s *Session) ExitCode() int {
	return s.exitCode
}

// Start runs the session as a service worker. Cancellation is a normal stop.
func (s *Session) Start(ctx context.Context) error {
	err := s.Play(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Play runs the loop until input ends, a command terminates the session,
// or ctx is done. Command failures never end the loop.
func (s *Session) Play(ctx context.Context) error {
	// Read input on its own goroutine so a canceled context is noticed while
	// waiting for a line. Only the loop below touches game state.
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		defer close(inputChan)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		inputErrChan <- scanner.Err()
	}()

	s.writeLine(banner)
	if err := s.prompt(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-inputChan:
			if !ok {
				select {
				case err := <-inputErrChan:
					if err != nil {
						s.writeLine("Ошибка ввода/вывода: " + err.Error())
						return fmt.Errorf("reading input: %w", err)
					}
				default:
				}
				return nil
			}

			if s.Execute(ctx, line) {
				return nil
			}

			if err := s.prompt(); err != nil {
				return err
			}
		}
	}
}

// Execute runs a single input line and reports whether the session ended.
func (s *Session) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	parts := strings.Fields(line)
	cmdName := game.FoldName(parts[0])
	args := parts[1:]

	h, ok := s.registry.Get(cmdName)
	if !ok {
		s.writeLine("Ошибка: Неизвестная команда: " + cmdName)
		return false
	}

	err := s.exec(ctx, h, args)
	if err == nil {
		s.state.AddScore(1)
		return false
	}

	var term *commands.Termination
	if errors.As(err, &term) {
		s.terminated = true
		s.exitCode = term.Code
		slog.Info("session terminated", "reason", term.Reason, "code", term.Code, "score", s.state.Score)
		return true
	}

	var userErr *commands.UserError
	if errors.As(err, &userErr) {
		s.writeLine("Ошибка: " + userErr.Message)
		return false
	}

	slog.Warn("command failed", "command", cmdName, "error", err)
	s.writeLine(fmt.Sprintf("Непредвиденная ошибка: %s: %s", errorKind(err), err.Error()))
	return false
}

// exec invokes a handler, turning a panic into an error so the loop survives it.
func (s *Session) exec(ctx context.Context, h commands.Handler, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()

	return h.Exec(ctx, &commands.CommandContext{
		State: s.state,
		Out:   s.out,
		Args:  args,
	})
}

func (s *Session) prompt() error {
	_, err := io.WriteString(s.out, prompt)
	return err
}

func (s *Session) writeLine(msg string) {
	if _, err := io.WriteString(s.out, msg+"\n"); err != nil {
		slog.Warn("failed to write to console", "error", err)
	}
}

// PanicError wraps a value recovered from a panicking handler.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

// errorKind names the category of an unexpected error: the type of the
// innermost wrapped error.
func errorKind(err error) string {
	var pe *PanicError
	if errors.As(err, &pe) {
		return "panic"
	}

	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			break
		}
		err = inner
	}

	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" || !unicode.IsUpper([]rune(name)[0]) {
		return "Error"
	}
	return name
}
