package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/service"
	"github.com/Alaswadi/cupperly-sub000/mocks"
)

func TestTenantService_Create_Success(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(nil)

	tenant, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name: "Acme Roasters",
		Slug: "acme-roasters",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Acme Roasters", tenant.Name)
	assert.Equal(t, "acme-roasters", tenant.Slug)
	assert.True(t, tenant.IsActive)
	repo.AssertExpectations(t)
}

func TestTenantService_Create_DuplicateSlug(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(domain.ErrDuplicateTenantSlug)

	tenant, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name: "Acme Roasters",
		Slug: "existing-slug",
	})

	assert.Nil(t, tenant)
	assert.ErrorIs(t, err, domain.ErrDuplicateTenantSlug)
}

func TestTenantService_GetByID_NotFound(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	tenantID := uuid.New()
	repo.On("GetByID", mock.Anything, tenantID).Return(nil, domain.ErrNotFound)

	tenant, err := svc.GetByID(context.Background(), tenantID)

	assert.Nil(t, tenant)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTenantService_GetBySlug(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	expected := &domain.Tenant{ID: uuid.New(), Name: "Acme Roasters", Slug: "acme-roasters", IsActive: true}
	repo.On("GetBySlug", mock.Anything, "acme-roasters").Return(expected, nil)

	tenant, err := svc.GetBySlug(context.Background(), "acme-roasters")

	assert.NoError(t, err)
	assert.Equal(t, expected, tenant)
}

func TestTenantService_Update_PatchesOnlyProvidedFields(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	tenantID := uuid.New()
	existing := &domain.Tenant{ID: tenantID, Name: "Old Name", Slug: "old-slug", IsActive: true}
	newName := "New Name"

	repo.On("GetByID", mock.Anything, tenantID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(nil)

	tenant, err := svc.Update(context.Background(), tenantID, service.UpdateTenantInput{
		Name: &newName,
	})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", tenant.Name)
	assert.Equal(t, "old-slug", tenant.Slug)
	assert.True(t, tenant.IsActive)
	repo.AssertExpectations(t)
}

func TestTenantService_Update_Deactivate(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	tenantID := uuid.New()
	existing := &domain.Tenant{ID: tenantID, Name: "Acme Roasters", Slug: "acme-roasters", IsActive: true}
	inactive := false

	repo.On("GetByID", mock.Anything, tenantID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(nil)

	tenant, err := svc.Update(context.Background(), tenantID, service.UpdateTenantInput{
		IsActive: &inactive,
	})

	assert.NoError(t, err)
	assert.False(t, tenant.IsActive)
}

func TestTenantService_Delete(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	tenantID := uuid.New()
	repo.On("Delete", mock.Anything, tenantID).Return(nil)

	err := svc.Delete(context.Background(), tenantID)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
