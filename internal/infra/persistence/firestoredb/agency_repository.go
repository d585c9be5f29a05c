package firestoredb

import (
	"context"
	"slices"

	"tripbook/internal/domain/constants"
	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/repository"
	"tripbook/internal/errors"
	"tripbook/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

type agencyRepository struct {
	client *firestore.Client
}

// NewAgencyRepository creates the Firestore backed agency repository.
func NewAgencyRepository(client *firestore.Client) repository.AgencyRepository {
	return &agencyRepository{client: client}
}

func (repo *agencyRepository) agencies() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionAgencies)
}

func (repo *agencyRepository) FindByID(ctx context.Context, uid string) (*entity.Agency, error) {
	snap, err := repo.agencies().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAgencyNotFound
		}

		return nil, errors.Wrap(err, "failed to find agency by id")
	}

	var m model.AgencyModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode agency")
	}

	return toAgencyDomain(uid, &m), nil
}

func (repo *agencyRepository) Create(ctx context.Context, agency *entity.Agency) error {
	if _, err := repo.agencies().Doc(agency.UID).Create(ctx, fromAgencyDomain(agency)); err != nil {
		if isAlreadyExists(err) {
			return errors.Wrapf(err, "agency %s already exists", agency.UID)
		}

		return errors.Wrap(err, "failed to create agency")
	}

	return nil
}

func (repo *agencyRepository) Update(ctx context.Context, uid string, fn func(*entity.Agency) error) (*entity.Agency, error) {
	return updateInTx(ctx, repo.client, repo.agencies().Doc(uid), repository.ErrAgencyNotFound,
		toAgencyDomain, fromAgencyDomain, fn)
}

func (repo *agencyRepository) Delete(ctx context.Context, uid string) error {
	if _, err := repo.agencies().Doc(uid).Delete(ctx); err != nil && !isNotFound(err) {
		return errors.Wrap(err, "failed to delete agency")
	}

	return nil
}

// List returns agencies ordered by signup time, newest first.
func (repo *agencyRepository) List(ctx context.Context, filter repository.AgencyFilter) ([]*entity.Agency, error) {
	query := repo.agencies().Query
	if filter.Approved != nil {
		query = query.Where("approved", "==", *filter.Approved)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agencies")
	}

	agencies, err := decodeAll(snaps, toAgencyDomain)
	if err != nil {
		return nil, err
	}

	sortAgenciesNewestFirst(agencies)

	return agencies, nil
}

func sortAgenciesNewestFirst(agencies []*entity.Agency) {
	slices.SortStableFunc(agencies, func(a, b *entity.Agency) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func toAgencyDomain(uid string, m *model.AgencyModel) *entity.Agency {
	return &entity.Agency{
		UID:         uid,
		Name:        m.Name,
		Email:       m.Email,
		Location:    m.Location,
		Logo:        m.Logo,
		Phone:       m.Phone,
		Website:     m.Website,
		Description: m.Description,
		Approved:    m.Approved,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		ApprovedAt:  m.ApprovedAt,
	}
}

func fromAgencyDomain(a *entity.Agency) *model.AgencyModel {
	return &model.AgencyModel{
		UID:         a.UID,
		Name:        a.Name,
		Email:       a.Email,
		Location:    a.Location,
		Logo:        a.Logo,
		Phone:       a.Phone,
		Website:     a.Website,
		Description: a.Description,
		Approved:    a.Approved,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		ApprovedAt:  a.ApprovedAt,
	}
}
