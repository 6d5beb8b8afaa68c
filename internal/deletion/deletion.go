// Package deletion turns a set of selected records into one confirmable
// deletion request and tracks it until the host resolves it.
package deletion

import (
	"context"
	"errors"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/iv/internal/index"
	"github.com/llehouerou/iv/internal/logging"
)

var (
	// ErrInFlight is returned when a deletion is requested while another one
	// awaits confirmation.
	ErrInFlight = errors.New("a deletion is already awaiting confirmation")
	// ErrNothingSelected is returned when a deletion names no records.
	ErrNothingSelected = errors.New("nothing selected")
)

// Phase is the workflow state.
type Phase int

const (
	Idle Phase = iota
	Requested
)

func (p Phase) String() string {
	if p == Requested {
		return "requested"
	}
	return "idle"
}

// Outcome is the host's answer to a deletion request.
type Outcome int

const (
	Cancelled Outcome = iota
	Confirmed
)

func (o Outcome) String() string {
	if o == Confirmed {
		return "confirmed"
	}
	return "cancelled"
}

// Ticket identifies one deletion request across the host round trip.
// Tickets are unique within the process; zero is never issued.
type Ticket uint64

var lastTicket atomic.Uint64

func nextTicket() Ticket {
	return Ticket(lastTicket.Add(1))
}

// ConfirmMsg asks the host to confirm Request. The host answers with a
// ResolvedMsg carrying the same Ticket.
type ConfirmMsg struct {
	Ticket  Ticket
	Request index.DeletionRequest
}

// ResolvedMsg carries the host's answer back to the requesting screen.
// Screens whose pending ticket differs ignore it.
type ResolvedMsg struct {
	Ticket  Ticket
	Outcome Outcome
	Err     error
}

// Requester creates deletion capabilities. *index.Client satisfies it.
type Requester interface {
	RequestDeletion(ctx context.Context, uris []string) (index.DeletionRequest, error)
}

// Workflow is the Idle -> Requested -> {Confirmed, Cancelled} -> Idle machine
// of one screen. The zero value is Idle.
type Workflow struct {
	phase  Phase
	ticket Ticket
	uris   []string
}

func (w *Workflow) Phase() Phase {
	return w.phase
}

// Ticket returns the ticket of the pending request, zero when Idle.
func (w *Workflow) Ticket() Ticket {
	return w.ticket
}

// Pending returns the uris of the request awaiting confirmation.
func (w *Workflow) Pending() []string {
	return w.uris
}

// Begin moves to Requested and returns the command that builds the request.
// The command yields a ConfirmMsg, or a Cancelled ResolvedMsg when the index
// refuses to build one.
func (w *Workflow) Begin(ctx context.Context, r Requester, uris []string) (tea.Cmd, error) {
	if w.phase == Requested {
		return nil, ErrInFlight
	}
	if len(uris) == 0 {
		return nil, ErrNothingSelected
	}
	w.phase = Requested
	w.ticket = nextTicket()
	w.uris = append([]string(nil), uris...)

	ticket, pending := w.ticket, w.uris
	return func() tea.Msg {
		req, err := r.RequestDeletion(ctx, pending)
		if err != nil {
			return ResolvedMsg{Ticket: ticket, Outcome: Cancelled, Err: err}
		}
		return ConfirmMsg{Ticket: ticket, Request: req}
	}, nil
}

// Resolve returns to Idle. ok is false when msg answers a request other than
// the pending one (or none is pending), in which case msg must be ignored.
func (w *Workflow) Resolve(msg ResolvedMsg) (outcome Outcome, ok bool) {
	if w.phase != Requested || msg.Ticket != w.ticket {
		return Cancelled, false
	}
	w.phase = Idle
	w.ticket = 0
	w.uris = nil
	return msg.Outcome, true
}

// CommitCmd applies a confirmed request. A failed commit is reported as
// Cancelled: nothing is assumed to have changed.
func CommitCmd(ctx context.Context, c ConfirmMsg, logger logging.Logger) tea.Cmd {
	if logger == nil {
		logger = logging.Nop{}
	}
	return func() tea.Msg {
		n := len(c.Request.URIs())
		if err := c.Request.Commit(ctx); err != nil {
			logger.Warn("deletion commit failed", "ticket", c.Ticket, "count", n, "err", err)
			return ResolvedMsg{Ticket: c.Ticket, Outcome: Cancelled, Err: err}
		}
		logger.Info("deleted media", "ticket", c.Ticket, "count", n)
		return ResolvedMsg{Ticket: c.Ticket, Outcome: Confirmed}
	}
}

// CancelCmd reports that the host declined the request.
func CancelCmd(c ConfirmMsg) tea.Cmd {
	return func() tea.Msg {
		return ResolvedMsg{Ticket: c.Ticket, Outcome: Cancelled}
	}
}
