package auth

import (
	"context"
	"errors"
)

// Common errors used by stores/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDisabled           = errors.New("authentication is disabled")
)

// ClientStore abstracts where client credentials come from.
type ClientStore interface {
	GetByID(ctx context.Context, id string) (Client, error)
}

type staticClientStore struct {
	clients map[string]Client
}

// NewStaticClientStore keeps clients from configuration in memory.
func NewStaticClientStore(clients ...Client) ClientStore {
	m := make(map[string]Client, len(clients))
	for _, c := range clients {
		if c.ID == "" {
			continue
		}
		m[c.ID] = c
	}
	return &staticClientStore{clients: m}
}

func (s *staticClientStore) GetByID(_ context.Context, id string) (Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return Client{}, ErrNotFound
	}
	return c, nil
}
