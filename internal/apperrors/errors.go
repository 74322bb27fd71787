// Package apperrors defines the typed failures shared by the game packages.
package apperrors

import "errors"

// Error codes. They are stable and double as process exit statuses in cmd/eleven.
const (
	CodeInvalidAttribute   = 10
	CodeInvalidPlayerCount = 11
	CodeInvalidPlayerName  = 12
	CodeEmptyDeck          = 20
	CodeDeckExhausted      = 21
	CodePlayerNotActive    = 30
	CodeDecisionFailed     = 40
	CodeScriptExhausted    = 41
)

// GameError 游戏错误
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrInvalidAttribute   = &GameError{Code: CodeInvalidAttribute, Message: "invalid card attribute"}
	ErrInvalidPlayerCount = &GameError{Code: CodeInvalidPlayerCount, Message: "this game is designed for 2-6 players"}
	ErrInvalidPlayerName  = &GameError{Code: CodeInvalidPlayerName, Message: "invalid player name"}
	ErrEmptyDeck          = &GameError{Code: CodeEmptyDeck, Message: "deck is empty"}
	ErrDeckExhausted      = &GameError{Code: CodeDeckExhausted, Message: "deck exhausted mid-game"}
	ErrPlayerNotActive    = &GameError{Code: CodePlayerNotActive, Message: "player is no longer active"}
	ErrDecisionFailed     = &GameError{Code: CodeDecisionFailed, Message: "decision source failed"}
	ErrScriptExhausted    = &GameError{Code: CodeScriptExhausted, Message: "scripted decisions exhausted"}
)

// Code returns the code of the outermost GameError in err's chain, or 0.
func Code(err error) int {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return 0
}
