// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/models"
)

// RemoteConfig configures the relay HTTP client.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

// remoteStore implements NodeStore against a relay over HTTP. All
// values cross the wire as the opaque bytes they already are; the relay
// sees nothing the local store would not.
type remoteStore struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewRemoteStore constructs a NodeStore backed by the relay at
// cfg.BaseURL. Call Authenticate before issuing writes; reads of public
// nodes work without a session.
func NewRemoteStore(cfg RemoteConfig) *remoteStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &remoteStore{client: cli}
}

type sessionRequest struct {
	UserID     string `json:"userId"`
	SigningPub string `json:"signingPub"`
	IssuedAt   int64  `json:"issuedAt"`
	Signature  string `json:"signature"`
}

type sessionResponse struct {
	Token string `json:"token"`
}

// Authenticate proves control of identity to the relay by signing a
// timestamped challenge and stores the returned bearer token for
// subsequent requests. The relay uses the token only to attribute
// writes; no confidentiality property depends on it.
func (r *remoteStore) Authenticate(ctx context.Context, identity models.Identity) error {
	issuedAt := time.Now().Unix()
	msg := sessionChallenge(identity.UserID, issuedAt)

	sig, err := crypto.Sign(identity, msg)
	if err != nil {
		return fmt.Errorf("sign session challenge: %w", err)
	}

	req := sessionRequest{
		UserID:     identity.UserID,
		SigningPub: base64.RawURLEncoding.EncodeToString(identity.SigningPub),
		IssuedAt:   issuedAt,
		Signature:  base64.RawURLEncoding.EncodeToString(sig),
	}

	var resp sessionResponse
	httpResp, err := r.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&resp).
		Post("/api/session")
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if httpResp.StatusCode() != http.StatusOK {
		return fmt.Errorf("create session: relay returned %d", httpResp.StatusCode())
	}

	r.mu.Lock()
	r.token = resp.Token
	r.mu.Unlock()
	return nil
}

// SessionChallenge is the byte string a client signs to open a session.
func sessionChallenge(userID string, issuedAt int64) []byte {
	return []byte("doc-vault session\x00" + userID + "\x00" + strconv.FormatInt(issuedAt, 10))
}

// SessionChallenge exposes the challenge format to the relay side so
// both ends sign and verify identical bytes.
func SessionChallenge(userID string, issuedAt int64) []byte {
	return sessionChallenge(userID, issuedAt)
}

func (r *remoteStore) bearer() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token
}

func (r *remoteStore) Get(ctx context.Context, path []string) (models.Node, error) {
	if len(path) == 0 {
		return models.Node{}, ErrEmptyPath
	}

	var node models.Node
	resp, err := r.client.R().
		SetContext(ctx).
		SetAuthToken(r.bearer()).
		SetQueryParam("path", JoinPath(path)).
		SetResult(&node).
		Get("/api/node")
	if err != nil {
		return models.Node{}, fmt.Errorf("get node: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return node, nil
	case http.StatusNotFound:
		return models.Node{}, ErrNotFound
	default:
		return models.Node{}, fmt.Errorf("get node: relay returned %d", resp.StatusCode())
	}
}

func (r *remoteStore) Put(ctx context.Context, path []string, value []byte, expectedVersion uint64) (models.Node, error) {
	if len(path) == 0 {
		return models.Node{}, ErrEmptyPath
	}

	var node models.Node
	resp, err := r.client.R().
		SetContext(ctx).
		SetAuthToken(r.bearer()).
		SetQueryParam("path", JoinPath(path)).
		SetHeader("X-Expected-Version", strconv.FormatUint(expectedVersion, 10)).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(value).
		SetResult(&node).
		Put("/api/node")
	if err != nil {
		return models.Node{}, fmt.Errorf("put node: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return node, nil
	case http.StatusConflict:
		return models.Node{}, ErrVersionConflict
	default:
		return models.Node{}, fmt.Errorf("put node: relay returned %d", resp.StatusCode())
	}
}

func (r *remoteStore) List(ctx context.Context, prefix []string) ([]models.Node, error) {
	if len(prefix) == 0 {
		return nil, ErrEmptyPath
	}

	var nodes []models.Node
	resp, err := r.client.R().
		SetContext(ctx).
		SetAuthToken(r.bearer()).
		SetQueryParam("prefix", JoinPath(prefix)).
		SetResult(&nodes).
		Get("/api/nodes")
	if err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("list nodes: relay returned %d", resp.StatusCode())
	}

	return nodes, nil
}

// Subscribe long-polls the relay's watch endpoint. Each successful poll
// reports writes that happened after the last seen change counter; the
// loop exits when ctx is done or the cancel func runs.
func (r *remoteStore) Subscribe(ctx context.Context, path []string, callback func(models.Node)) (CancelFunc, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	watchCtx, cancel := context.WithCancel(ctx)

	go func() {
		var after uint64
		for watchCtx.Err() == nil {
			resp, err := r.client.R().
				SetContext(watchCtx).
				SetAuthToken(r.bearer()).
				SetQueryParam("path", JoinPath(path)).
				SetQueryParam("after", strconv.FormatUint(after, 10)).
				Get("/api/watch")
			if err != nil || resp.StatusCode() != http.StatusOK {
				// transient relay trouble: back off and retry the poll
				select {
				case <-watchCtx.Done():
					return
				case <-time.After(2 * time.Second):
				}
				continue
			}

			var events struct {
				Cursor uint64        `json:"cursor"`
				Nodes  []models.Node `json:"nodes"`
			}
			if err := json.Unmarshal(resp.Body(), &events); err != nil {
				continue
			}

			after = events.Cursor
			for _, node := range events.Nodes {
				callback(node)
			}
		}
	}()

	return CancelFunc(cancel), nil
}
