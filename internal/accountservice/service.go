// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, owner string) (domain.Account, error)
	Get(ctx context.Context, id int32) (domain.Account, error)
	GetByOwner(ctx context.Context, owner string) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Open creates the zeroed ledger account for the given owner.
func (s *Service) Open(ctx context.Context, owner string) (domain.Account, error) {
	return s.repo.Create(ctx, owner)
}

// Get returns account for the given account ID.
func (s *Service) Get(ctx context.Context, id int32) (domain.Account, error) {
	return s.repo.Get(ctx, id)
}

// GetByOwner returns the ledger account of the given user.
func (s *Service) GetByOwner(ctx context.Context, owner string) (domain.Account, error) {
	return s.repo.GetByOwner(ctx, owner)
}
