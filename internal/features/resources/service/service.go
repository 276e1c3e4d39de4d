package service

import (
	"context"
	"encoding/json"
	"strings"

	"courier-console/internal/core/backend"
	"courier-console/internal/core/logger"
	"courier-console/internal/core/metrics"
	"courier-console/internal/features/resources/domain"
	"courier-console/internal/features/resources/ports"

	"go.uber.org/zap"
)

// Caller identifies the signed-in user a call is made for.
type Caller struct {
	SessionID string
	Token     string
}

// ResourceService proxies CRUD calls and reports changes as notices.
type ResourceService struct {
	repo     ports.Repository
	notifier ports.Notifier
}

// NewResourceService creates a new ResourceService.
func NewResourceService(repo ports.Repository, notifier ports.Notifier) *ResourceService {
	return &ResourceService{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *ResourceService) List(ctx context.Context, caller Caller, kind domain.Kind, query map[string]string) (*domain.Result, error) {
	return s.repo.List(ctx, caller.Token, kind, query)
}

func (s *ResourceService) Get(ctx context.Context, caller Caller, kind domain.Kind, id string) (*domain.Result, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrMissingID
	}
	return s.repo.Get(ctx, caller.Token, kind, id)
}

func (s *ResourceService) Create(ctx context.Context, caller Caller, kind domain.Kind, body []byte) (*domain.Result, error) {
	if err := domain.ValidateBody(body); err != nil {
		return nil, err
	}

	res, err := s.repo.Create(ctx, caller.Token, kind, json.RawMessage(body))
	s.report(ctx, caller, kind, "create", "Created", res, err)
	return res, err
}

func (s *ResourceService) Update(ctx context.Context, caller Caller, kind domain.Kind, id string, body []byte) (*domain.Result, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrMissingID
	}
	if err := domain.ValidateBody(body); err != nil {
		return nil, err
	}

	res, err := s.repo.Update(ctx, caller.Token, kind, id, json.RawMessage(body))
	s.report(ctx, caller, kind, "update", "Updated", res, err)
	return res, err
}

// Delete removes id. Nothing is sent to the backend unless confirmed is set.
func (s *ResourceService) Delete(ctx context.Context, caller Caller, kind domain.Kind, id string, confirmed bool) (*domain.Result, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrMissingID
	}
	if !confirmed {
		return nil, domain.ErrConfirmationRequired
	}

	res, err := s.repo.Delete(ctx, caller.Token, kind, id)
	s.report(ctx, caller, kind, "delete", "Deleted", res, err)
	return res, err
}

func (s *ResourceService) report(ctx context.Context, caller Caller, kind domain.Kind, op, done string, res *domain.Result, err error) {
	metrics.ObserveWorkflow(string(kind)+"_"+op, err)

	title := strings.ToUpper(string(kind[:1])) + string(kind[1:])
	if err != nil {
		logger.Get().Warn("Resource change failed",
			zap.String("kind", string(kind)),
			zap.String("operation", op),
			zap.Error(err),
		)
		s.notifier.Failure(ctx, caller.SessionID, title, backend.UserMessage(err))
		return
	}

	msg := done
	if res != nil && res.Message != "" {
		msg = res.Message
	}
	s.notifier.Success(ctx, caller.SessionID, title, msg)
}
