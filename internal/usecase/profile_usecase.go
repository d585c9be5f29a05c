package usecase

import (
	"context"

	"tripbook/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, uid string) (*entity.User, error)
	UpsertProfile(ctx context.Context, actor Actor, input *UpsertProfileInput) (*entity.User, error)

	// AssignRole sets the role claim and the stored role of the target account.
	AssignRole(ctx context.Context, actor Actor, input *AssignRoleInput) error
}

// --- Input DTOs ---

// UpsertProfileInput defines the profile fields a user may set.
type UpsertProfileInput struct {
	DisplayName *string `json:"displayName,omitempty" validate:"omitempty,min=1"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	ProfilePic  *string `json:"profilePic,omitempty" validate:"omitempty,url"`
}

// AssignRoleInput defines the data required to assign a role.
// An empty UID targets the caller.
type AssignRoleInput struct {
	UID   string      `json:"uid,omitempty"`
	Role  entity.Role `json:"role" validate:"required"`
	Email string      `json:"email,omitempty" validate:"omitempty,email"`
}
