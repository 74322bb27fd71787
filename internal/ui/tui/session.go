package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/eleven/internal/game"
)

// program is the part of *tea.Program a Session drives.
type program interface {
	Run() (tea.Model, error)
	Send(msg tea.Msg)
	Quit()
}

// Session runs one game behind a bubbletea program. It is the Decider for
// the local seats and the Observer that keeps the table up to date.
type Session struct {
	model   *Model
	program program
}

// NewSession builds the program; opts are passed to tea.NewProgram.
func NewSession(opts ...tea.ProgramOption) *Session {
	m := NewModel()
	return &Session{model: m, program: tea.NewProgram(m, opts...)}
}

// WantsCard shows the prompt and blocks until a key is pressed or ctx ends.
func (s *Session) WantsCard(ctx context.Context, t game.Turn) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	reply := make(chan bool, 1)
	s.program.Send(promptMsg{turn: t, reply: reply})
	select {
	case wants := <-reply:
		return wants, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (s *Session) OnEvent(ev game.Event) {
	s.program.Send(eventMsg{ev: ev})
}

type outcome struct {
	result *game.Result
	err    error
}

// Run starts play on its own goroutine and drives the UI until the user
// quits. Quitting early cancels the game; Run always waits for play to return.
func (s *Session) Run(ctx context.Context, play func(ctx context.Context) (*game.Result, error)) (*game.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		res, err := play(ctx)
		done <- outcome{result: res, err: err}
		s.program.Send(doneMsg{result: res, err: err})
	}()
	go func() {
		<-ctx.Done()
		s.program.Quit()
	}()

	_, runErr := s.program.Run()
	cancel()
	out := <-done
	if runErr != nil {
		return out.result, runErr
	}
	return out.result, out.err
}
