//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/eleven/internal/game"
)

// MockDecider 实现 game.Decider 的 mock
type MockDecider struct {
	mock.Mock
}

func (m *MockDecider) WantsCard(ctx context.Context, t game.Turn) (bool, error) {
	args := m.Called(ctx, t)
	return args.Bool(0), args.Error(1)
}

// OnTurn expects a decision request for the named player.
func (m *MockDecider) OnTurn(name string) *mock.Call {
	return m.On("WantsCard", mock.Anything, mock.MatchedBy(func(t game.Turn) bool {
		return t.Name == name
	}))
}
