package entity

import (
	"github.com/gridduelinc/gridduel-backend/internal/apperror"
)

const (
	StatusPending  = "pending"
	StatusRejected = "rejected"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game is the single record kept for an ordered (host, guest) pair. The host
// is the player who sent the invitation, the guest the player invited. Marks
// are assigned once, when the invitation is accepted, and the turn always
// names the identity expected to move next while the game is ongoing.
type Game struct {
	Host      string         `json:"host"`
	Guest     string         `json:"guest"`
	Status    string         `json:"status"`
	Board     Board          `json:"board"`
	Turn      string         `json:"turn,omitempty"`
	HostMark  string         `json:"host_mark,omitempty"`
	GuestMark string         `json:"guest_mark,omitempty"`
	Winner    string         `json:"winner,omitempty"`
	History   []FinishedGame `json:"history,omitempty"`
}

// FinishedGame is an archived result of an earlier completed game between
// the same pair, kept when the pair starts a fresh invitation.
type FinishedGame struct {
	Board     Board  `json:"board"`
	Winner    string `json:"winner"`
	HostMark  string `json:"host_mark"`
	GuestMark string `json:"guest_mark"`
}

// NewGame creates a pending invitation from host to guest with an empty
// board and no marks, turn or winner assigned yet.
func NewGame(host, guest string) *Game {
	return &Game{
		Host:   host,
		Guest:  guest,
		Status: StatusPending,
		Board:  Board{},
	}
}

func (that *Game) IsPending() bool {
	return that.Status == StatusPending
}

func (that *Game) IsRejected() bool {
	return that.Status == StatusRejected
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// IsTerminal reports whether the record may never change again, short of a
// fresh invitation renewing the slot.
func (that *Game) IsTerminal() bool {
	return that.IsRejected() || that.IsFinished()
}

// IsParticipant reports whether the player is the host or the guest.
func (that *Game) IsParticipant(player string) bool {
	return player == that.Host || player == that.Guest
}

// MarkOf returns the mark held by the player, or the empty string for
// outsiders and for games whose marks are not assigned yet.
func (that *Game) MarkOf(player string) string {
	switch player {
	case that.Host:
		return that.HostMark
	case that.Guest:
		return that.GuestMark
	default:
		return EmptyCell
	}
}

// Opponent returns the other participant, or an empty identity for outsiders.
func (that *Game) Opponent(player string) string {
	switch player {
	case that.Host:
		return that.Guest
	case that.Guest:
		return that.Host
	default:
		return ""
	}
}

// Start moves an accepted invitation into play: marks are split between host
// and guest, the game becomes ongoing, and the turn is handed to whichever
// identity received X.
func (that *Game) Start() {
	that.HostMark, that.GuestMark = AssignMarks(that.Host, that.Guest)
	that.Status = StatusOngoing

	if that.HostMark == MarkX {
		that.Turn = that.Host
	} else {
		that.Turn = that.Guest
	}
}

// Reject closes a pending invitation for good. Callers must check IsPending.
func (that *Game) Reject() {
	that.Status = StatusRejected
}

// Renew resets a terminal record back to a fresh pending invitation for the
// same pair. A finished board is archived into the history first; a rejected
// invitation left nothing worth keeping. Callers must check IsTerminal.
func (that *Game) Renew() {
	if that.IsFinished() {
		that.History = append(that.History, FinishedGame{
			Board:     that.Board,
			Winner:    that.Winner,
			HostMark:  that.HostMark,
			GuestMark: that.GuestMark,
		})
	}

	that.Status = StatusPending
	that.Board = Board{}
	that.Turn = ""
	that.HostMark = ""
	that.GuestMark = ""
	that.Winner = ""
}

// MakeMove validates and applies one move by the given player. The checks
// run in a fixed order: game state, participation, turn, then cell. On a
// deciding move the game finishes with the winner recorded and the turn left
// on the final mover; otherwise the turn passes to the opponent.
func (that *Game) MakeMove(player string, cell int) error {
	if !that.IsOngoing() {
		return apperror.ErrGameNotInProgress
	}

	if !that.IsParticipant(player) {
		return apperror.ErrNotInvolved
	}

	if that.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if !that.Board.InRange(cell) {
		return apperror.ErrInvalidCell
	}

	if !that.Board.IsLegal(cell) {
		return apperror.ErrCellOccupied
	}

	that.Board.Place(cell, that.MarkOf(player))

	if winner, over := that.Board.Evaluate(); over {
		that.Winner = winner
		that.Status = StatusFinished

		return nil
	}

	that.Turn = that.Opponent(player)

	return nil
}
