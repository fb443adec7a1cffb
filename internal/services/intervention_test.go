package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gmao-system/internal/dto"
	"gmao-system/internal/entities"
	apperrors "gmao-system/pkg/errors"
)

type fakeInterventionRepository struct {
	stored            *entities.Intervention
	created           *entities.Intervention
	updated           *entities.Intervention
	lastForcedType    string
	lastWithSchedules bool
	lastRestriction   string
}

func (f *fakeInterventionRepository) ListInterventions(ctx context.Context, filter dto.InterventionFilter, forcedType string, withSchedules bool) ([]entities.Intervention, error) {
	f.lastForcedType = forcedType
	f.lastWithSchedules = withSchedules
	return []entities.Intervention{}, nil
}

func (f *fakeInterventionRepository) FindIntervention(ctx context.Context, id int64, typeRestriction string) (*entities.Intervention, error) {
	f.lastRestriction = typeRestriction
	if f.stored == nil {
		return nil, apperrors.ErrNotFound
	}
	return f.stored, nil
}

func (f *fakeInterventionRepository) CreateIntervention(ctx context.Context, iv entities.Intervention) (*entities.Intervention, error) {
	f.created = &iv
	return &iv, nil
}

func (f *fakeInterventionRepository) UpdateIntervention(ctx context.Context, id int64, iv entities.Intervention) (*entities.Intervention, error) {
	f.updated = &iv
	return &iv, nil
}

func (f *fakeInterventionRepository) DeleteIntervention(ctx context.Context, id int64, typeRestriction string) error {
	f.lastRestriction = typeRestriction
	return nil
}

func newInterventionServiceAt(repo *fakeInterventionRepository, now time.Time) *InterventionService {
	return &InterventionService{
		interventionRepository: repo,
		logger:                 zap.NewNop(),
		now:                    func() time.Time { return now },
	}
}

func TestListInterventionsScheduleJoinFollowsRestriction(t *testing.T) {
	repo := &fakeInterventionRepository{}
	svc := newInterventionServiceAt(repo, frozenNow)

	_, err := svc.ListInterventions(context.Background(), dto.InterventionFilter{}, "")
	require.NoError(t, err)
	assert.True(t, repo.lastWithSchedules)

	_, err = svc.ListInterventions(context.Background(), dto.InterventionFilter{}, entities.InterventionTypeCurative)
	require.NoError(t, err)
	assert.False(t, repo.lastWithSchedules)
	assert.Equal(t, entities.InterventionTypeCurative, repo.lastForcedType)
}

func TestCreateInterventionDefaults(t *testing.T) {
	repo := &fakeInterventionRepository{}
	svc := newInterventionServiceAt(repo, frozenNow)

	_, err := svc.CreateIntervention(context.Background(), dto.CreateInterventionDTO{
		InterventionType: entities.InterventionTypePreventive,
		Title:            "Quarterly lubrication",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, entities.PriorityMedium, repo.created.Priority)
	assert.Equal(t, entities.InterventionStatusPlanned, repo.created.Status)
	assert.False(t, repo.created.StartedAt.Valid)
	assert.False(t, repo.created.CompletedAt.Valid)
}

func TestCreateCurativeForcesType(t *testing.T) {
	repo := &fakeInterventionRepository{}
	svc := newInterventionServiceAt(repo, frozenNow)

	_, err := svc.CreateCurative(context.Background(), dto.CreateCurativeDTO{Title: "Realign conveyor belt"})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, entities.InterventionTypeCurative, repo.created.InterventionType)
}

func TestUpdateInterventionStampsStartedAt(t *testing.T) {
	repo := &fakeInterventionRepository{stored: &entities.Intervention{ID: 1, Status: entities.InterventionStatusPlanned}}
	svc := newInterventionServiceAt(repo, frozenNow)

	_, err := svc.UpdateIntervention(context.Background(), 1, dto.UpdateInterventionDTO{
		InterventionType: entities.InterventionTypeCurative,
		Title:            "Realign conveyor belt",
		Priority:         entities.PriorityUrgent,
		Status:           entities.InterventionStatusInProgress,
	}, "")
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, null.TimeFrom(frozenNow), repo.updated.StartedAt)
	assert.False(t, repo.updated.CompletedAt.Valid)
}

func TestUpdateInterventionRespectsRestriction(t *testing.T) {
	repo := &fakeInterventionRepository{}
	svc := newInterventionServiceAt(repo, frozenNow)

	_, err := svc.UpdateIntervention(context.Background(), 9, dto.UpdateInterventionDTO{
		InterventionType: entities.InterventionTypeCurative,
		Title:            "X",
		Priority:         entities.PriorityLow,
		Status:           entities.InterventionStatusPlanned,
	}, entities.InterventionTypeCurative)
	require.Error(t, err)
	assert.Equal(t, entities.InterventionTypeCurative, repo.lastRestriction)
	httpErr, ok := err.(*apperrors.HttpError)
	require.True(t, ok)
	assert.Equal(t, 404, httpErr.Code)
	assert.Nil(t, repo.updated)
}
