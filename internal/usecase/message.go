package usecase

// ExecuteMsg is the closed set of mutating operations the engine accepts.
// The acting player is supplied separately by the transport, so a message
// only carries the identities the actor does not imply.
type ExecuteMsg interface {
	isExecuteMsg()
}

// InviteMsg invites a guest; the sender becomes the host.
type InviteMsg struct {
	Guest string
}

// AcceptMsg accepts the invitation hosted by Host; the sender is the guest.
type AcceptMsg struct {
	Host string
}

// RejectMsg declines the invitation hosted by Host; the sender is the guest.
type RejectMsg struct {
	Host string
}

// PlayMsg makes a move on the game of the (Host, Guest) pair; the sender
// must be one of the two.
type PlayMsg struct {
	Host  string
	Guest string
	Cell  int
}

func (InviteMsg) isExecuteMsg() {}
func (AcceptMsg) isExecuteMsg() {}
func (RejectMsg) isExecuteMsg() {}
func (PlayMsg) isExecuteMsg()   {}

// QueryMsg is the closed set of read-only operations.
type QueryMsg interface {
	isQueryMsg()
}

// GamesQuery asks for the record of one (Host, Guest) pair.
type GamesQuery struct {
	Host  string
	Guest string
}

// AllGamesQuery asks for every stored record.
type AllGamesQuery struct{}

func (GamesQuery) isQueryMsg()    {}
func (AllGamesQuery) isQueryMsg() {}
