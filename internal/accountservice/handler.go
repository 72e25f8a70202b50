package accountservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/okuznetsov/blogware/internal/common"
)

type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user account with the default registered_viewer role.
// There is no email confirmation step.
func (s *AccountService) Register(ctx context.Context, input RegisterUserInput) (*User, error) {
	v := common.NewValidator()
	validateName(v, input.Name)
	validateEmail(v, input.Email)
	validatePassword(v, input.Password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	user := &User{
		ID:        uuid.New(),
		Email:     input.Email,
		Name:      input.Name,
		CreatedAt: s.clock.Now(),
	}

	if err := user.Password.set(input.Password); err != nil {
		return nil, err
	}

	if err := s.m.insertUser(ctx, user, RoleRegisteredViewer); err != nil {
		return nil, err
	}

	user.Roles = []string{RoleRegisteredViewer}

	return user, nil
}

// Login verifies credentials and, on success, issues an access/refresh pair.
// Unknown email and wrong password produce the identical failure result so
// accounts cannot be enumerated.
func (s *AccountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	failed := &LoginResult{
		IsSuccessful: false,
		ErrorMessage: "Wrong email or password",
	}

	user, err := s.m.getByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return failed, nil
		default:
			return nil, err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, err
	}

	if !ok {
		return failed, nil
	}

	tokens, err := s.tokens.Grant(ctx, user.ID, user.Name, user.Email, user.Roles)
	if err != nil {
		return nil, err
	}

	return &LoginResult{IsSuccessful: true, Tokens: tokens}, nil
}

func (s *AccountService) GetDetails(ctx context.Context, userID uuid.UUID) (*User, error) {
	return s.m.getByID(ctx, userID)
}

type UpdateUserInput struct {
	Name           string `json:"name"`
	AvatarFileName string `json:"avatar_file_name"`
}

// UpdateDetails changes the user's display name and avatar. A newly supplied
// avatar must already live in the media store. The new values cascade onto
// the user's blog, if any.
func (s *AccountService) UpdateDetails(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*User, error) {
	v := common.NewValidator()
	validateName(v, input.Name)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	user, err := s.m.getByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.AvatarFileName != "" && input.AvatarFileName != user.AvatarFileName {
		exists, err := s.blobs.Exists(ctx, input.AvatarFileName)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, common.NewValidationError("avatar_file_name", fmt.Sprintf("image with name %s was not found", input.AvatarFileName), nil)
		}
	}

	user.Name = input.Name
	user.AvatarFileName = input.AvatarFileName

	if err := s.m.updateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
