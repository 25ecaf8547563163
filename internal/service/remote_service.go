package service

import (
	"context"
	"errors"
	"fmt"

	app_errors "github.com/Azartis/Konsultabot2-sub000/internal/errors"
	"github.com/Azartis/Konsultabot2-sub000/internal/remote"
)

// RemoteClient is the part of remote.Client the service needs.
type RemoteClient interface {
	Status() remote.Status
	Discover(ctx context.Context, candidates []string) (string, error)
}

// RemoteService reports on and re-discovers the online answer path.
type RemoteService struct {
	client     RemoteClient
	candidates []string
}

// NewRemoteService creates a RemoteService probing candidates on Discover.
func NewRemoteService(client RemoteClient, candidates []string) *RemoteService {
	return &RemoteService{client: client, candidates: candidates}
}

// Status returns the current remote configuration.
func (s *RemoteService) Status(ctx context.Context) (*remote.Status, error) {
	status := s.client.Status()
	return &status, nil
}

// Discover probes the configured backend candidates and switches to the
// first reachable one.
func (s *RemoteService) Discover(ctx context.Context) (*remote.Status, error) {
	if len(s.candidates) == 0 {
		return nil, fmt.Errorf("%w: no backend candidates configured", app_errors.ErrValidation)
	}
	if _, err := s.client.Discover(ctx, s.candidates); err != nil {
		if errors.Is(err, remote.ErrNoBackend) {
			return nil, fmt.Errorf("%w: no backend candidate is reachable", app_errors.ErrConflict)
		}
		return nil, err
	}
	return s.Status(ctx)
}
