// Package client is the Go client for the MASER API. It owns the bearer
// credential, the session lifecycle and the polling-based sync that stands
// in for server push.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/AK301382/maser/internal/apperrors"
	"github.com/AK301382/maser/internal/services"
)

// Road is the decoded road record as the API returns it.
type Road struct {
	ID          uint        `json:"ID"`
	CreatedAt   time.Time   `json:"CreatedAt"`
	UserID      uint        `json:"user_id"`
	Name        string      `json:"road_name"`
	Type        string      `json:"road_type"`
	Coordinates [][]float64 `json:"coordinates"`
	Geometry    string      `json:"geometry"`
	Status      string      `json:"status"`
	CoinAwarded bool        `json:"coin_awarded"`
}

// POI is the place record as the API returns it.
type POI struct {
	ID          uint      `json:"ID"`
	CreatedAt   time.Time `json:"CreatedAt"`
	UserID      uint      `json:"user_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Type        string    `json:"poi_type"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Status      string    `json:"status"`
	CoinAwarded bool      `json:"coin_awarded"`
}

// User is the profile payload returned by auth endpoints.
type User struct {
	ID      uint   `json:"ID"`
	Name    string `json:"full_name"`
	Email   string `json:"email"`
	Coins   int    `json:"coins"`
	IsAdmin bool   `json:"is_admin"`
}

// Client talks to the API with one stored bearer credential. Any
// 401-equivalent response clears the credential and fires the auth-expired
// callback; the caller must re-authenticate.
type Client struct {
	base string
	http *http.Client

	mu            sync.RWMutex
	token         string
	onAuthExpired func()
}

func New(baseURL string) *Client {
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// OnAuthExpired registers the session-teardown hook invoked when the server
// rejects the credential.
func (c *Client) OnAuthExpired(fn func()) {
	c.mu.Lock()
	c.onAuthExpired = fn
	c.mu.Unlock()
}

// Token returns the stored credential, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ClearToken drops the stored credential (logout).
func (c *Client) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

func (c *Client) setToken(tok string) {
	c.mu.Lock()
	c.token = tok
	c.mu.Unlock()
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Transient transport failure; the user re-triggers the action.
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.ClearToken()
		c.mu.RLock()
		fn := c.onAuthExpired
		c.mu.RUnlock()
		if fn != nil {
			fn()
		}
		return apperrors.ErrAuth
	}

	if resp.StatusCode >= 400 {
		var ae apiError
		_ = json.NewDecoder(resp.Body).Decode(&ae)
		switch resp.StatusCode {
		case http.StatusBadRequest:
			return apperrors.NewValidation("", ae.Error)
		case http.StatusNotFound:
			return &apperrors.NotFoundError{Kind: ae.Error}
		case http.StatusConflict:
			return &apperrors.InvalidStateError{Kind: ae.Error}
		default:
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, ae.Error)
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Register creates an account and opens a session.
func (c *Client) Register(ctx context.Context, name, email, password string) (*Session, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"full_name": name, "email": email, "password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.setToken(resp.AccessToken)
	return newSession(c, resp.User), nil
}

// Login authenticates and opens a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.setToken(resp.AccessToken)
	return newSession(c, resp.User), nil
}

// Me refreshes the profile (and coin balance) of the logged-in user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// SubmitRoad sends a finished road draft.
func (c *Client) SubmitRoad(ctx context.Context, in services.RoadInput) (*Road, error) {
	var resp struct {
		Road Road `json:"road"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/roads", in, &resp); err != nil {
		return nil, err
	}
	return &resp.Road, nil
}

// SubmitPOI sends a place submission.
func (c *Client) SubmitPOI(ctx context.Context, in services.POIInput) (*POI, error) {
	var resp struct {
		POI POI `json:"poi"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/pois", in, &resp); err != nil {
		return nil, err
	}
	return &resp.POI, nil
}

// Notifications fetches the caller's inbox.
func (c *Client) Notifications(ctx context.Context) ([]services.NotificationView, error) {
	var resp struct {
		Notifications []services.NotificationView `json:"notifications"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

// MarkRead marks one notification read.
func (c *Client) MarkRead(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodPut, "/api/notifications/"+strconv.FormatUint(uint64(id), 10)+"/read", nil, nil)
}

// MapSnapshot is the navigation view's one-shot fetch of approved data. It
// is taken on view entry and not refreshed while the view stays mounted.
type MapSnapshot struct {
	Roads []Road
	POIs  []POI
	Taken time.Time
}

// FetchMapSnapshot loads the currently approved roads and places.
func (c *Client) FetchMapSnapshot(ctx context.Context) (*MapSnapshot, error) {
	var roadsResp struct {
		Roads []Road `json:"roads"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/roads/approved", nil, &roadsResp); err != nil {
		return nil, err
	}
	var poisResp struct {
		POIs []POI `json:"pois"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/pois/approved", nil, &poisResp); err != nil {
		return nil, err
	}
	return &MapSnapshot{
		Roads: roadsResp.Roads,
		POIs:  poisResp.POIs,
		Taken: time.Now(),
	}, nil
}
