//go:build !production

package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/eleven/internal/game"
)

// MockObserver 实现 game.Observer 的 mock
type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) OnEvent(ev game.Event) {
	m.Called(ev)
}

// EventTypes lists the types of every event received so far, in order.
func (m *MockObserver) EventTypes() []game.EventType {
	var types []game.EventType
	for _, c := range m.Calls {
		if ev, ok := c.Arguments.Get(0).(game.Event); ok {
			types = append(types, ev.Type)
		}
	}
	return types
}
