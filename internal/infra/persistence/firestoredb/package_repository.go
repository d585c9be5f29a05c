package firestoredb

import (
	"context"
	"slices"
	"strings"

	"tripbook/internal/domain/constants"
	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/repository"
	"tripbook/internal/errors"
	"tripbook/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

type packageRepository struct {
	client *firestore.Client
}

// NewPackageRepository creates the Firestore backed package repository.
func NewPackageRepository(client *firestore.Client) repository.PackageRepository {
	return &packageRepository{client: client}
}

func (repo *packageRepository) packages() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionPackages)
}

func (repo *packageRepository) FindByID(ctx context.Context, packageID string) (*entity.TourPackage, error) {
	snap, err := repo.packages().Doc(packageID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package by id")
	}

	var m model.PackageModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode package")
	}

	return toPackageDomain(packageID, &m), nil
}

// Create stores the package under a generated document id.
func (repo *packageRepository) Create(ctx context.Context, pkg *entity.TourPackage) error {
	ref := repo.packages().NewDoc()
	if _, err := ref.Create(ctx, fromPackageDomain(pkg)); err != nil {
		return errors.Wrap(err, "failed to create package")
	}
	pkg.PackageID = ref.ID

	return nil
}

func (repo *packageRepository) Update(ctx context.Context, packageID string, fn func(*entity.TourPackage) error) (*entity.TourPackage, error) {
	return updateInTx(ctx, repo.client, repo.packages().Doc(packageID), repository.ErrPackageNotFound,
		toPackageDomain, fromPackageDomain, fn)
}

func (repo *packageRepository) List(ctx context.Context, filter repository.PackageFilter) ([]*entity.TourPackage, error) {
	query := repo.packages().Query
	if filter.AgencyID != "" {
		query = query.Where("agencyId", "==", filter.AgencyID)
	}
	if filter.ActiveOnly {
		query = query.Where("isActive", "==", true)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	pkgs, err := decodeAll(snaps, toPackageDomain)
	if err != nil {
		return nil, err
	}

	// Firestore has no substring match; the destination filter runs here.
	if needle := strings.ToLower(strings.TrimSpace(filter.Destination)); needle != "" {
		pkgs = slices.DeleteFunc(pkgs, func(p *entity.TourPackage) bool {
			return !strings.Contains(strings.ToLower(p.Destination), needle)
		})
	}

	slices.SortStableFunc(pkgs, func(a, b *entity.TourPackage) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return pkgs, nil
}

func toPackageDomain(id string, m *model.PackageModel) *entity.TourPackage {
	itinerary := make([]entity.ItineraryDay, 0, len(m.Itinerary))
	for _, d := range m.Itinerary {
		itinerary = append(itinerary, entity.ItineraryDay{Day: d.Day, Title: d.Title, Description: d.Description})
	}

	return &entity.TourPackage{
		PackageID:     id,
		AgencyID:      m.AgencyID,
		AgencyName:    m.AgencyName,
		Title:         m.Title,
		Destination:   m.Destination,
		Duration:      m.Duration,
		Price:         m.Price,
		MaxTravellers: m.MaxTravellers,
		Description:   m.Description,
		ImgURL:        m.ImgURL,
		Highlights:    nonNilStrings(m.Highlights),
		Inclusions:    nonNilStrings(m.Inclusions),
		Exclusions:    nonNilStrings(m.Exclusions),
		Itinerary:     itinerary,
		Rating:        m.Rating,
		ReviewCount:   m.ReviewCount,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeactivatedAt: m.DeactivatedAt,
	}
}

func fromPackageDomain(p *entity.TourPackage) *model.PackageModel {
	itinerary := make([]model.ItineraryDayModel, 0, len(p.Itinerary))
	for _, d := range p.Itinerary {
		itinerary = append(itinerary, model.ItineraryDayModel{Day: d.Day, Title: d.Title, Description: d.Description})
	}

	return &model.PackageModel{
		AgencyID:      p.AgencyID,
		AgencyName:    p.AgencyName,
		Title:         p.Title,
		Destination:   p.Destination,
		Duration:      p.Duration,
		Price:         p.Price,
		MaxTravellers: p.MaxTravellers,
		Description:   p.Description,
		ImgURL:        p.ImgURL,
		Highlights:    nonNilStrings(p.Highlights),
		Inclusions:    nonNilStrings(p.Inclusions),
		Exclusions:    nonNilStrings(p.Exclusions),
		Itinerary:     itinerary,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		DeactivatedAt: p.DeactivatedAt,
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
