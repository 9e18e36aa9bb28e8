package apperror

import "errors"

var (
	ErrGameAlreadyExists   = errors.New("an active game already exists between these players")
	ErrSelfInvite          = errors.New("cannot invite yourself")
	ErrNoPendingInvitation = errors.New("no pending invitation")
	ErrGameNotInProgress   = errors.New("no game in progress")
	ErrNotInvolved         = errors.New("player is not involved in this game")
	ErrNotYourTurn         = errors.New("it's not your turn")
	ErrInvalidCell         = errors.New("invalid cell index")
	ErrCellOccupied        = errors.New("cell is already occupied")
)
