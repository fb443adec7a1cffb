package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gmao-system/internal/dto"
	"gmao-system/internal/entities"
	apperrors "gmao-system/pkg/errors"
)

type fakeSparePartRepository struct {
	created *entities.SparePart
	updated *entities.SparePart
}

func (f *fakeSparePartRepository) ListSpareParts(ctx context.Context, filter dto.SparePartFilter) ([]entities.SparePart, error) {
	return []entities.SparePart{}, nil
}

func (f *fakeSparePartRepository) FindSparePart(ctx context.Context, id int64) (*entities.SparePart, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeSparePartRepository) CreateSparePart(ctx context.Context, p entities.SparePart) (*entities.SparePart, error) {
	f.created = &p
	return &p, nil
}

func (f *fakeSparePartRepository) UpdateSparePart(ctx context.Context, id int64, p entities.SparePart) (*entities.SparePart, error) {
	f.updated = &p
	return &p, nil
}

func (f *fakeSparePartRepository) DeleteSparePart(ctx context.Context, id int64) error {
	return nil
}

func TestCreateSparePartDefaults(t *testing.T) {
	repo := &fakeSparePartRepository{}
	svc := NewSparePartService(repo, zap.NewNop())

	_, err := svc.CreateSparePart(context.Background(), dto.CreateSparePartDTO{
		PartNumber: "BRG-6204",
		Name:       "Ball Bearing 6204",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "EUR", repo.created.Currency)
	assert.Equal(t, int64(0), repo.created.CurrentStock)
	assert.Equal(t, int64(0), repo.created.MinimumStock)
	assert.Equal(t, int64(0), repo.created.MaximumStock)
}

func TestUpdateSparePartFullReplace(t *testing.T) {
	repo := &fakeSparePartRepository{}
	svc := NewSparePartService(repo, zap.NewNop())

	current := int64(12)
	_, err := svc.UpdateSparePart(context.Background(), 1, dto.UpdateSparePartDTO{
		PartNumber:   "BRG-6204",
		Name:         "Ball Bearing 6204",
		CurrentStock: &current,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(12), repo.updated.CurrentStock)
	// omitted optional fields are wiped, not preserved
	assert.False(t, repo.updated.Description.Valid)
	assert.Equal(t, int64(0), repo.updated.MinimumStock)
	assert.Equal(t, "EUR", repo.updated.Currency)
}

func TestFindSparePartNotFound(t *testing.T) {
	svc := NewSparePartService(&fakeSparePartRepository{}, zap.NewNop())

	_, err := svc.FindSparePart(context.Background(), 42)
	require.Error(t, err)
	httpErr, ok := err.(*apperrors.HttpError)
	require.True(t, ok)
	assert.Equal(t, 404, httpErr.Code)
	assert.Equal(t, "Spare part not found", httpErr.Message)
}
