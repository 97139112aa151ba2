package state

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jask/servihogar/internal/domain"
)

// Requests lists the inbox entries with the given status, in arrival order.
// An empty status lists everything.
func (a *App) Requests(status domain.RequestStatus) []domain.Request {
	var out []domain.Request
	for _, r := range a.requests {
		if status == "" || r.Status == status {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (a *App) Request(id string) (domain.Request, error) {
	idx := a.requestIndex(id)
	if idx < 0 {
		return domain.Request{}, fmt.Errorf("request %s: %w", id, domain.ErrRequestNotFound)
	}
	return a.requests[idx].Clone(), nil
}

// AcceptRequest takes on a pending job.
func (a *App) AcceptRequest(id string) error {
	return a.transitionRequest(id, domain.RequestPending, domain.RequestAccepted)
}

// RejectRequest declines a pending job.
func (a *App) RejectRequest(id string) error {
	return a.transitionRequest(id, domain.RequestPending, domain.RequestRejected)
}

// CompleteRequest marks an accepted job as done.
func (a *App) CompleteRequest(id string) error {
	return a.transitionRequest(id, domain.RequestAccepted, domain.RequestCompleted)
}

// PostponeRequest only notifies; the request keeps its status.
func (a *App) PostponeRequest(id string) error {
	if err := a.requireProfile("postpone request"); err != nil {
		return err
	}
	if a.requestIndex(id) < 0 {
		return fmt.Errorf("postpone request %s: %w", id, domain.ErrRequestNotFound)
	}
	a.log.Info("request postponed", zap.String("request", id))
	return nil
}

// SendMessage appends a professional message. Blank text is ignored and
// reported with sent=false.
func (a *App) SendMessage(id, text string) (msg domain.Message, sent bool, err error) {
	if err := a.requireProfile("send message"); err != nil {
		return domain.Message{}, false, err
	}
	idx := a.requestIndex(id)
	if idx < 0 {
		return domain.Message{}, false, fmt.Errorf("send message %s: %w", id, domain.ErrRequestNotFound)
	}
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, false, nil
	}
	msg = domain.Message{
		ID:        a.newID(),
		Sender:    domain.SenderProfessional,
		Text:      text,
		Timestamp: a.now().UTC(),
	}
	r := a.requests[idx].Clone()
	r.Messages = append(r.Messages, msg)
	a.requests[idx] = r
	a.log.Debug("message sent", zap.String("request", id), zap.String("message", msg.ID))
	return msg, true, nil
}

// transitionRequest moves a request from one status to another and rejects
// any other starting status with ErrInvalidTransition.
func (a *App) transitionRequest(id string, from, to domain.RequestStatus) error {
	if err := a.requireProfile("update request"); err != nil {
		return err
	}
	idx := a.requestIndex(id)
	if idx < 0 {
		return fmt.Errorf("update request %s: %w", id, domain.ErrRequestNotFound)
	}
	if cur := a.requests[idx].Status; cur != from {
		return fmt.Errorf("request %s is %s, cannot become %s: %w", id, cur, to, domain.ErrInvalidTransition)
	}
	a.requests[idx].Status = to
	a.log.Info("request status changed", zap.String("request", id), zap.String("from", string(from)), zap.String("status", string(to)))
	return nil
}

func (a *App) requestIndex(id string) int {
	for i, r := range a.requests {
		if r.ID == id {
			return i
		}
	}
	return -1
}
