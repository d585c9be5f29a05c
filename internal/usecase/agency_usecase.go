package usecase

import (
	"context"

	"tripbook/internal/domain/entity"
)

// AgencyUsecase defines the agency signup and approval workflow.
type AgencyUsecase interface {
	// SubmitSignup creates the identity account and a pending agency record.
	SubmitSignup(ctx context.Context, input *AgencySignupInput) (*entity.Agency, error)

	// ListPending returns agencies awaiting a decision, newest first.
	ListPending(ctx context.Context) ([]*entity.Agency, error)

	// ListApproved returns the customer-facing agency directory.
	ListApproved(ctx context.Context) ([]*entity.Agency, error)

	// GetApproved returns an agency only when it has been approved.
	GetApproved(ctx context.Context, agencyID string) (*entity.Agency, error)

	// Decide approves or rejects a pending agency.
	Decide(ctx context.Context, agencyID string, decision entity.AgencyDecision) (*AgencyDecisionResult, error)

	UpdateProfile(ctx context.Context, agencyID string, input *UpdateAgencyProfileInput) (*entity.Agency, error)
}

// --- Input DTOs ---

// AgencySignupInput defines the data required to register an agency.
type AgencySignupInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
}

// UpdateAgencyProfileInput defines the agency fields that may be changed.
type UpdateAgencyProfileInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Location    *string `json:"location,omitempty"`
	Logo        *string `json:"logo,omitempty" validate:"omitempty,url"`
	Phone       *string `json:"phone,omitempty"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Description *string `json:"description,omitempty"`
}

// --- Output DTOs ---

// AgencyDecisionResult reports the outcome of an approval decision.
type AgencyDecisionResult struct {
	AgencyID string                `json:"agencyId"`
	Decision entity.AgencyDecision `json:"decision"`
	Agency   *entity.Agency        `json:"agency,omitempty"` // Nil after a rejection.
}
