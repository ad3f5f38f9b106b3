package service

import (
	"context"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/dto"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/users"

	"golang.org/x/crypto/bcrypt"
)

// UserService applies the directory rules (uniqueness, protected main admin)
// on top of the users collection store.
type UserService struct {
	store *catalog.Store[*model.User]
}

func NewUserService(store *catalog.Store[*model.User]) *UserService {
	return &UserService{store: store}
}

func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.store.Load(ctx)
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	candidate := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         req.Role,
		Status:       model.StatusActive,
	}

	err = s.store.Mutate(ctx, func(items []*model.User) ([]*model.User, error) {
		if verr := users.Validate(candidate, items, true); verr != nil {
			return nil, verr
		}
		candidate.ID = users.NextID(items)
		return append(items, candidate), nil
	})
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

func (s *UserService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*model.User, error) {
	var updated *model.User

	err := s.store.Mutate(ctx, func(items []*model.User) ([]*model.User, error) {
		existing, ok := catalog.FindByID(items, id)
		if !ok {
			return nil, catalog.ErrNotFound
		}
		updated = existing.Clone()

		if req.FirstName != "" {
			updated.FirstName = req.FirstName
		}
		if req.LastName != "" {
			updated.LastName = req.LastName
		}
		if req.Username != "" {
			updated.Username = req.Username
		}
		if req.Email != "" {
			updated.Email = req.Email
		}
		if req.Phone != "" {
			updated.Phone = req.Phone
		}
		if req.Role != "" {
			// The main admin keeps its admin role no matter what.
			if id == model.MainAdminID && req.Role != model.RoleAdmin {
				return nil, users.ErrProtected
			}
			updated.Role = req.Role
		}
		if req.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
			if err != nil {
				return nil, err
			}
			updated.PasswordHash = string(hash)
		}

		if verr := users.Validate(updated, items, false); verr != nil {
			return nil, verr
		}
		return catalog.Replace(items, id, updated), nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete requires the confirmation flag the UI collects; the main admin is
// refused regardless of it.
func (s *UserService) Delete(ctx context.Context, id int64, confirmed bool) error {
	return s.store.Mutate(ctx, func(items []*model.User) ([]*model.User, error) {
		return users.Delete(items, id, confirmed)
	})
}

func (s *UserService) ToggleStatus(ctx context.Context, id int64) (*model.User, error) {
	var updated *model.User
	err := s.store.Mutate(ctx, func(items []*model.User) ([]*model.User, error) {
		u, terr := users.ToggleStatus(items, id)
		if terr != nil {
			return nil, terr
		}
		updated = u
		return catalog.Replace(items, id, u), nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
