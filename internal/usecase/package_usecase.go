package usecase

import (
	"context"

	"tripbook/internal/domain/entity"
)

// PackageUsecase defines package management for agencies and the public catalogue.
type PackageUsecase interface {
	// CreatePackage adds a package for an approved agency.
	CreatePackage(ctx context.Context, agencyID string, input *CreatePackageInput) (*entity.TourPackage, error)

	// UpdatePackage patches a package owned by the agency.
	UpdatePackage(ctx context.Context, agencyID, packageID string, patch *UpdatePackageInput) (*entity.TourPackage, error)

	// DeletePackage soft deletes a package owned by the agency.
	DeletePackage(ctx context.Context, agencyID, packageID string) error

	// ListAgencyPackages returns the agency's packages with booking statistics, newest first.
	ListAgencyPackages(ctx context.Context, agencyID string) ([]*entity.PackageWithStats, error)

	GetAgencySummary(ctx context.Context, agencyID string) (*entity.AgencySummary, error)

	// ListActivePackages returns active packages of approved agencies.
	// A non-empty destination filters by case-insensitive substring.
	ListActivePackages(ctx context.Context, destination string) ([]*entity.TourPackage, error)

	// GetPackage returns an active package of an approved agency.
	GetPackage(ctx context.Context, packageID string) (*entity.TourPackage, error)
}

// --- Input DTOs ---

// ItineraryDayInput is one day of an itinerary in a package request.
type ItineraryDayInput struct {
	Day         int    `json:"day" validate:"gte=1"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// CreatePackageInput defines the data required to create a package.
type CreatePackageInput struct {
	Title         string              `json:"title" validate:"required"`
	Destination   string              `json:"destination" validate:"required"`
	Duration      string              `json:"duration" validate:"required"`
	Price         float64             `json:"price" validate:"gt=0"`
	MaxTravellers int                 `json:"maxTravellers" validate:"gte=1"`
	Description   string              `json:"description"`
	ImgURL        string              `json:"imgUrl" validate:"omitempty,url"`
	Highlights    []string            `json:"highlights"`
	Inclusions    []string            `json:"inclusions"`
	Exclusions    []string            `json:"exclusions"`
	Itinerary     []ItineraryDayInput `json:"itinerary" validate:"dive"`
}

// UpdatePackageInput is the typed patch accepted for a package.
type UpdatePackageInput struct {
	Title         *string              `json:"title,omitempty" validate:"omitempty,min=1"`
	Destination   *string              `json:"destination,omitempty" validate:"omitempty,min=1"`
	Duration      *string              `json:"duration,omitempty"`
	Price         *float64             `json:"price,omitempty" validate:"omitempty,gt=0"`
	MaxTravellers *int                 `json:"maxTravellers,omitempty" validate:"omitempty,gte=1"`
	Description   *string              `json:"description,omitempty"`
	ImgURL        *string              `json:"imgUrl,omitempty" validate:"omitempty,url"`
	Highlights    *[]string            `json:"highlights,omitempty"`
	Inclusions    *[]string            `json:"inclusions,omitempty"`
	Exclusions    *[]string            `json:"exclusions,omitempty"`
	Itinerary     *[]ItineraryDayInput `json:"itinerary,omitempty" validate:"omitempty,dive"`
	IsActive      *bool                `json:"isActive,omitempty"`
}

// ToItinerary converts request itinerary days into entity values.
func ToItinerary(days []ItineraryDayInput) []entity.ItineraryDay {
	out := make([]entity.ItineraryDay, 0, len(days))
	for _, d := range days {
		out = append(out, entity.ItineraryDay{Day: d.Day, Title: d.Title, Description: d.Description})
	}

	return out
}
