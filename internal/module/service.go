package module

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/1Kunalvats9/teen-titans-backend/internal/config"
)

var (
	ErrModuleNotFound = errors.New("module not found")
	ErrUnauthorized   = errors.New("unauthorized")
)

type ModuleService interface {
	GetModule(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (*Module, error)
	ListOwn(ctx context.Context, creatorID uuid.UUID) ([]*Module, error)
	ListPublic(ctx context.Context) ([]*Module, error)
	SetVisibility(ctx context.Context, id uuid.UUID, requesterID uuid.UUID, isPublic bool) (*Module, error)
	Delete(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error
}

type moduleService struct {
	repo ModuleRepository
}

func NewService(repo ModuleRepository) ModuleService {
	return &moduleService{repo: repo}
}

// GetModule returns a module with its ordered steps. Private modules are
// only visible to their creator.
func (s *moduleService) GetModule(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (*Module, error) {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrModuleNotFound
	}
	if !m.IsPublic && m.CreatorID != requesterID {
		return nil, ErrUnauthorized
	}
	return m, nil
}

func (s *moduleService) ListOwn(ctx context.Context, creatorID uuid.UUID) ([]*Module, error) {
	return s.repo.ListByCreator(creatorID)
}

func (s *moduleService) ListPublic(ctx context.Context) ([]*Module, error) {
	return s.repo.ListPublic()
}

func (s *moduleService) SetVisibility(ctx context.Context, id uuid.UUID, requesterID uuid.UUID, isPublic bool) (*Module, error) {
	log := config.WithContext(ctx)

	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrModuleNotFound
	}
	if m.CreatorID != requesterID {
		return nil, ErrUnauthorized
	}

	m.IsPublic = isPublic
	if err := s.repo.Update(m); err != nil {
		log.WithError(err).Error("Failed to update module visibility")
		return nil, err
	}

	log.Infof("Module %s visibility set to public=%v", id, isPublic)
	return m, nil
}

func (s *moduleService) Delete(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error {
	log := config.WithContext(ctx)

	m, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrModuleNotFound
	}
	if m.CreatorID != requesterID {
		return ErrUnauthorized
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete module")
		return err
	}

	log.Infof("Module %s deleted", id)
	return nil
}
