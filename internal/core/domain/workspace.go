package domain

// Flash is a one-shot user-facing message shown on the next page render.
type Flash struct {
	Kind    string
	Message string
}

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Workspace holds one browser session's page state. It is created from the
// fixtures on first use and thrown away on logout.
type Workspace struct {
	Data     Fixtures
	Schedule ScheduleState
	Wallet   Wallet
	Request  RequestState
	Flashes  []Flash
}

// NewWorkspace seeds a workspace from a private copy of f.
func NewWorkspace(f Fixtures) *Workspace {
	data := f.Clone()
	return &Workspace{
		Data:     data,
		Schedule: NewScheduleState(),
		Wallet:   Wallet{Balance: data.RewardPoints},
		Request:  NewRequestState(),
	}
}

// AddFlash queues a message.
func (w *Workspace) AddFlash(kind, msg string) {
	w.Flashes = append(w.Flashes, Flash{Kind: kind, Message: msg})
}

// TakeFlashes returns and clears the queued messages.
func (w *Workspace) TakeFlashes() []Flash {
	out := w.Flashes
	w.Flashes = nil
	return out
}
