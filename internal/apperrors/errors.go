package apperrors

// 错误码
const (
	CodeInvalidFormat     = 1001
	CodeAlreadyAbsent     = 1002
	CodeInvalidChoice     = 1003
	CodeNotEnoughCards    = 2001
	CodeDivisionUndefined = 3001
	CodeSameRankGate      = 3002
)

// GameError is a coded error shared by the deck, the odds engine and the session.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrInvalidFormat     = &GameError{Code: CodeInvalidFormat, Message: "invalid card format"}
	ErrAlreadyAbsent     = &GameError{Code: CodeAlreadyAbsent, Message: "card already removed from the deck"}
	ErrInvalidChoice     = &GameError{Code: CodeInvalidChoice, Message: "choice must be BIG or SMALL"}
	ErrNotEnoughCards    = &GameError{Code: CodeNotEnoughCards, Message: "not enough cards left to draw a gate"}
	ErrDivisionUndefined = &GameError{Code: CodeDivisionUndefined, Message: "no cards left to draw"}
	ErrSameRankGate      = &GameError{Code: CodeSameRankGate, Message: "non-pair gate needs two different ranks"}
)
