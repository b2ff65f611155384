package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/internal/repository"
	"github.com/limbo/discipline-tracker/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

const (
	profilePicturesFolder = "profile-pictures"
	recentTasksLimit      = 10
	passwordCost          = 12
)

type UserService struct {
	repo  repository.UsersRepositoryI
	tasks repository.TasksRepositoryI
	blobs BlobStore
}

func NewUserService(usersRepo repository.UsersRepositoryI, tasksRepo repository.TasksRepositoryI, blobs BlobStore) *UserService {
	return &UserService{
		repo:  usersRepo,
		tasks: tasksRepo,
		blobs: blobs,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %w", err)
	}
	id, err := us.repo.Create(ctx, &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return user, nil
}

// Login reports unknown email and wrong password the same way.
func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdateProfileRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	var picture *string
	if req.Picture != nil {
		url, err := us.blobs.Upload(ctx, req.Picture, profilePicturesFolder)
		if err != nil {
			return nil, fmt.Errorf("uploading profile picture error: %w", err)
		}
		picture = &url
	}
	if err := us.repo.UpdateProfile(ctx, uid, req.Name, picture); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository updating error: %w", err)
	}
	return us.GetByID(ctx, uid)
}

func (us *UserService) ListWithRecentTasks(ctx context.Context) ([]*UserWithRecentTasks, error) {
	users, err := us.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	result := make([]*UserWithRecentTasks, 0, len(users))
	for _, u := range users {
		recent, err := us.tasks.ListRecentByUser(ctx, u.ID, recentTasksLimit)
		if err != nil {
			return nil, fmt.Errorf("listing recent tasks of %s error: %w", u.ID, err)
		}
		result = append(result, &UserWithRecentTasks{User: u, RecentTasks: recent})
	}
	return result, nil
}

func (us *UserService) ChangeRole(ctx context.Context, actor, target uuid.UUID, role string) error {
	parsed, err := entity.ParseRole(role)
	if err != nil {
		return errorvalues.ErrInvalidRole
	}
	if actor == target {
		return errorvalues.ErrSelfModification
	}
	if err = us.repo.UpdateRole(ctx, target, parsed); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("repository updating role error: %w", err)
	}
	return nil
}

// DeleteUser removes target together with its tasks, notifications and planners.
func (us *UserService) DeleteUser(ctx context.Context, actor, target uuid.UUID) error {
	if actor == target {
		return errorvalues.ErrSelfModification
	}
	if err := us.repo.Delete(ctx, target); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("repository deletion error: %w", err)
	}
	return nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
