package users

import (
	"context"

	"github.com/userhub/userhub/internal/models"
)

// Service encapsulates user-related business logic
type Service struct {
	repo UserRepository
}

func NewService(r UserRepository) *Service {
	return &Service{repo: r}
}

// Create validates and normalizes the candidate record, then hands it to the
// repository which assigns the durable identity. attrs is the decoded request
// body, so individual values may be absent or of the wrong type; only the
// name field is validated, the rest are stored as supplied.
func (s *Service) Create(ctx context.Context, attrs map[string]any) (*models.User, error) {
	name, err := NormalizeName(attrs["name"])
	if err != nil {
		return nil, err
	}
	email, _ := attrs["email"].(string)
	role, _ := attrs["role"].(string)
	org, _ := attrs["organization"].(string)
	u := &models.User{
		Name:         name,
		Email:        email,
		Role:         role,
		Organization: org,
	}
	return s.repo.Insert(ctx, u)
}

// Get returns the user with the given identity, or nil when not found.
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.List(ctx)
}

// Rename applies the same name contract as Create before persisting.
func (s *Service) Rename(ctx context.Context, id string, rawName any) (*models.User, error) {
	name, err := NormalizeName(rawName)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateName(ctx, id, name)
}

func (s *Service) SetAvatarKey(ctx context.Context, id, key string) error {
	return s.repo.SetAvatarKey(ctx, id, key)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
