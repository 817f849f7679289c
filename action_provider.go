package holdem

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNilActionProvider = errors.New("holdem: action provider is nil")
	ErrActionTimeout     = errors.New("holdem: action timeout")
)

// ActionProvider is asked once per turn for the decision of the seat to act.
// It may block until the decision is available.
type ActionProvider interface {
	RequestAction(ctx context.Context, seat int, snapshot *Snapshot) (ActionToken, error)
}

type ActionProviderFunc func(ctx context.Context, seat int, snapshot *Snapshot) (ActionToken, error)

func (f ActionProviderFunc) RequestAction(ctx context.Context, seat int, snapshot *Snapshot) (ActionToken, error) {
	return f(ctx, seat, snapshot)
}

// NextHandWaiter is implemented by providers that gate the start of the next
// hand on a host signal.
type NextHandWaiter interface {
	WaitNextHand(ctx context.Context) error
}

type ActionRequest struct {
	ID       string    `json:"id"`
	Seat     int       `json:"seat"`
	Snapshot *Snapshot `json:"snapshot"`
}

type ActionResponse struct {
	RequestID string      `json:"request_id"`
	Token     ActionToken `json:"token"`
}

// ChannelActionProvider is the blocking boundary between the engine goroutine
// and the host. The engine publishes ActionRequest values on Requests() and
// waits for the matching ActionResponse. Responses for any other request ID
// are dropped. The action time is enforced by the engine through ctx.
type ChannelActionProvider struct {
	requests  chan ActionRequest
	responses chan ActionResponse
	nextHand  chan struct{}
}

func NewChannelActionProvider() *ChannelActionProvider {
	return &ChannelActionProvider{
		requests:  make(chan ActionRequest, 1),
		responses: make(chan ActionResponse, 1),
		nextHand:  make(chan struct{}, 1),
	}
}

func (p *ChannelActionProvider) Requests() <-chan ActionRequest {
	return p.requests
}

func (p *ChannelActionProvider) Respond(ctx context.Context, requestID string, token ActionToken) error {
	select {
	case p.responses <- ActionResponse{RequestID: requestID, Token: token}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NextHand lets the engine start the next hand. Extra signals are coalesced.
func (p *ChannelActionProvider) NextHand() {
	select {
	case p.nextHand <- struct{}{}:
	default:
	}
}

func (p *ChannelActionProvider) WaitNextHand(ctx context.Context) error {
	select {
	case <-p.nextHand:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *ChannelActionProvider) RequestAction(ctx context.Context, seat int, snapshot *Snapshot) (ActionToken, error) {
	req := ActionRequest{
		ID:       uuid.New().String(),
		Seat:     seat,
		Snapshot: snapshot,
	}

	select {
	case p.requests <- req:
	case <-ctx.Done():
		return ActionToken{}, ctx.Err()
	}

	for {
		select {
		case resp := <-p.responses:
			if resp.RequestID != req.ID {
				// stale answer to an expired request
				continue
			}
			return resp.Token, nil
		case <-ctx.Done():
			p.withdraw(req.ID)
			return ActionToken{}, ctx.Err()
		}
	}
}

// withdraw removes an unanswered request that the host never picked up.
func (p *ChannelActionProvider) withdraw(requestID string) {
	select {
	case req := <-p.requests:
		if req.ID != requestID {
			p.requests <- req
		}
	default:
	}
}
