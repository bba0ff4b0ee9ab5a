package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

const (
	MsgPasswordMismatch = "New passwords do not match."
	MsgPasswordTooShort = "Password must be at least 6 characters long."

	minPasswordLength = 6
)

type profileStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProfileDTO, error)
	Save(ctx context.Context, profile ProfileDTO) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

// Service manages account profiles.
type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*ProfileDTO, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error
}

type service struct {
	store    profileStore
	hasher   passwordHasher
	validate *validator.Validate
	now      func() time.Time
}

// NewService builds the profile service. A nil clock uses time.Now.
func NewService(store profileStore, hasher passwordHasher, now func() time.Time) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("profile store required")
	}
	if hasher == nil {
		return nil, fmt.Errorf("password hasher required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: store, hasher: hasher, validate: validator.New(), now: now}, nil
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error) {
	profile, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}
	if profile == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
	}
	return profile, nil
}

// UpdateProfile overwrites the profile fields. Unknown users get a new profile.
func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*ProfileDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	input = UpdateProfileInput{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.ToLower(strings.TrimSpace(input.Email)),
		Address: strings.TrimSpace(input.Address),
		Phone:   strings.TrimSpace(input.Phone),
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, profileValidationError(err)
	}

	profile, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}
	if profile == nil {
		profile = &ProfileDTO{ID: userID}
	}
	profile.Name = input.Name
	profile.Email = input.Email
	profile.Address = input.Address
	profile.Phone = input.Phone

	if err := s.store.Save(ctx, *profile); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save profile")
	}
	return profile, nil
}

// ChangePassword checks the new password against its confirmation and minimum length,
// then keeps a hash of it. The current password is not checked.
func (s *service) ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgPasswordMismatch).
			WithDetails(map[string]string{"confirm_password": MsgPasswordMismatch})
	}
	if len(input.NewPassword) < minPasswordLength {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgPasswordTooShort).
			WithDetails(map[string]string{"new_password": MsgPasswordTooShort})
	}

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}
	changedAt := s.now().UTC()
	profile.PasswordHash = hash
	profile.PasswordChangedAt = &changedAt
	if err := s.store.Save(ctx, *profile); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save profile")
	}
	return nil
}

func profileValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid profile")
	}
	details := map[string]string{}
	for _, fe := range errs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			details[field] = "is required"
		case "email":
			details[field] = "must be a valid email"
		case "max":
			details[field] = "must be at most " + fe.Param() + " characters"
		default:
			details[field] = "is invalid"
		}
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "Failed to update profile. Please try again.").WithDetails(details)
}
