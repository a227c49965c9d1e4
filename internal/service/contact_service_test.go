package service

import (
	"context"
	"errors"
	"testing"

	"crm-hub-be/internal/dto"
	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/repository/contract"
	"crm-hub-be/internal/repository/specification"
	"crm-hub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// flakyContactRepository accepts writes but fails every read, simulating
// a database that drops out between the insert and the snapshot reload.
type flakyContactRepository struct {
	contract.ContactRepository
	created []*entity.Contact
	readErr error
}

func (r *flakyContactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	r.created = append(r.created, contact)
	return nil
}

func (r *flakyContactRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contact, error) {
	return nil, r.readErr
}

type fakeContactUow struct {
	unitofwork.UnitOfWork
	contacts *flakyContactRepository
}

func (u *fakeContactUow) ContactRepository() contract.ContactRepository {
	return u.contacts
}

type fakeContactUowFactory struct {
	uow *fakeContactUow
}

func (f *fakeContactUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func TestContactCreateSurvivesSnapshotReloadFailure(t *testing.T) {
	repo := &flakyContactRepository{readErr: errors.New("connection reset")}
	svc := NewContactService(&fakeContactUowFactory{uow: &fakeContactUow{contacts: repo}})

	res, err := svc.Create(context.Background(), uuid.New(), &dto.UpsertContactRequest{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, "Ann", res.FirstName)
	}
	assert.Len(t, repo.created, 1)
}

func TestContactListSurfacesLoadError(t *testing.T) {
	repo := &flakyContactRepository{readErr: errors.New("connection reset")}
	svc := NewContactService(&fakeContactUowFactory{uow: &fakeContactUow{contacts: repo}})

	_, err := svc.List(context.Background(), &dto.ListContactsQuery{})
	assert.Error(t, err)
}
