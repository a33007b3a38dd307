package client

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AK301382/maser/internal/capture"
	"github.com/AK301382/maser/internal/services"
)

// Session is the explicit replacement for ambient global user state: created
// on successful authentication, torn down on logout or on an auth failure
// from any call. Everything scheduled on behalf of the user (the
// notification poller) hangs off the session context and dies with it.
type Session struct {
	client *Client

	mu   sync.RWMutex
	user User

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

func newSession(c *Client, user User) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{client: c, user: user, ctx: ctx, cancel: cancel}
	c.OnAuthExpired(s.close)
	return s
}

// User returns the profile captured at login (refresh with RefreshUser).
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// RefreshUser re-fetches the profile, picking up coin balance changes.
func (s *Session) RefreshUser(ctx context.Context) (User, error) {
	u, err := s.client.Me(ctx)
	if err != nil {
		return User{}, err
	}
	s.mu.Lock()
	s.user = *u
	s.mu.Unlock()
	return *u, nil
}

// Context is canceled when the session ends; tie poll loops to it.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Logout clears the credential and tears the session down.
func (s *Session) Logout() {
	s.client.ClearToken()
	s.close()
}

// Active reports whether the session has not been torn down.
func (s *Session) Active() bool {
	select {
	case <-s.ctx.Done():
		return false
	default:
		return true
	}
}

func (s *Session) close() {
	s.once.Do(s.cancel)
}

// StartNotificationPoller wires a poller to this session's lifetime.
func (s *Session) StartNotificationPoller(onUpdate func([]services.NotificationView)) *Poller {
	p := NewPoller(s.client.Notifications, onUpdate)
	go p.Run(s.ctx)
	return p
}

// RoadDraft pairs a drawing-mode tracker with a dedup token, so that
// resubmitting the same draft after a lost response cannot create a second
// record.
type RoadDraft struct {
	Tracker *capture.Tracker
	token   string
}

func NewRoadDraft() *RoadDraft {
	return &RoadDraft{
		Tracker: capture.NewTracker(),
		token:   uuid.NewString(),
	}
}

// Submit finalizes the drawn geometry and sends it. Fails without a network
// call if fewer than 2 points were drawn.
func (s *Session) Submit(ctx context.Context, draft *RoadDraft, name, roadType string) (*Road, error) {
	coords, err := draft.Tracker.Finalize()
	if err != nil {
		return nil, err
	}
	return s.client.SubmitRoad(ctx, services.RoadInput{
		Name:        name,
		Type:        roadType,
		Coordinates: coords,
		ClientToken: draft.token,
	})
}
