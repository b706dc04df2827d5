package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complab/internal/adapter/repository"
	"complab/internal/domain/entity"
	"complab/pkg/errors"
)

type repairFixture struct {
	uc       *RepairUseCase
	services *repository.MemoryRepairServiceRepository
	now      time.Time
}

func newRepairFixture(t *testing.T) *repairFixture {
	t.Helper()
	ctx := context.Background()

	users := repository.NewMemoryUserRepository()
	require.NoError(t, users.Create(ctx, &entity.User{ID: "user-1", Email: "ivan@example.com"}))

	priceTo := int64(15000)
	services := repository.NewMemoryRepairServiceRepository()
	require.NoError(t, services.Create(ctx, &entity.RepairService{
		ID:            "rs-1",
		Name:          "Замена матрицы ноутбука",
		Category:      entity.RepairCategoryLaptop,
		EstimatedTime: "1-2 дня",
		PriceFrom:     3500,
		PriceTo:       &priceTo,
		IsPopular:     true,
	}))
	require.NoError(t, services.Create(ctx, &entity.RepairService{
		ID:        "rs-2",
		Name:      "Диагностика компьютера",
		Category:  entity.RepairCategoryDesktop,
		PriceFrom: 500,
	}))

	uc := NewRepairUseCase(services, repository.NewMemoryRepairRequestRepository(), users)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }
	return &repairFixture{uc: uc, services: services, now: now}
}

func createRequest(t *testing.T, f *repairFixture) *entity.RepairRequest {
	t.Helper()
	request, err := f.uc.CreateRequest(context.Background(), "user-1", CreateRepairRequestInput{
		ServiceID:          "rs-1",
		DeviceType:         "laptop",
		DeviceBrand:        "ASUS",
		DeviceModel:        "ROG Strix G16",
		ProblemDescription: "Экран мигает и гаснет",
	})
	require.NoError(t, err)
	return request
}

func TestListServicesByCategory(t *testing.T) {
	f := newRepairFixture(t)
	ctx := context.Background()

	all, err := f.uc.ListServices(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	laptops, err := f.uc.ListServices(ctx, entity.RepairCategoryLaptop)
	require.NoError(t, err)
	require.Len(t, laptops, 1)
	assert.Equal(t, "rs-1", laptops[0].ID)

	_, err = f.uc.ListServices(ctx, "blender")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	popular, err := f.uc.ListPopularServices(ctx)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, "rs-1", popular[0].ID)
}

func TestCreateRequestSnapshotsService(t *testing.T) {
	f := newRepairFixture(t)
	request := createRequest(t, f)

	assert.Regexp(t, `^REP-2024-\d{6}$`, request.RequestNumber)
	assert.Equal(t, entity.RepairStatusPending, request.Status)
	require.Len(t, request.StatusHistory, 1)
	assert.Equal(t, "Замена матрицы ноутбука", request.Service.Name)
	assert.Equal(t, int64(3500), request.Service.PriceFrom)
	assert.Nil(t, request.CompletedAt)
}

func TestRepairSetStatusStampsCompletedAt(t *testing.T) {
	f := newRepairFixture(t)
	ctx := context.Background()
	request := createRequest(t, f)

	estimated := int64(8000)
	request, err := f.uc.SetStatus(ctx, request.ID, entity.RepairStatusDiagnosed, "нужна новая матрица", &estimated, nil)
	require.NoError(t, err)
	assert.Nil(t, request.CompletedAt, "completedAt only set on completion")
	require.NotNil(t, request.EstimatedCost)
	assert.Equal(t, estimated, *request.EstimatedCost)

	final := int64(8500)
	request, err = f.uc.SetStatus(ctx, request.ID, entity.RepairStatusCompleted, "", nil, &final)
	require.NoError(t, err)
	require.NotNil(t, request.CompletedAt)
	assert.Equal(t, f.now, *request.CompletedAt)
	require.Len(t, request.StatusHistory, 3)
	assert.Equal(t, entity.RepairStatusCompleted, request.StatusHistory[2].Status)
}

func TestRepairSetStatusRejectsTerminalTransitions(t *testing.T) {
	f := newRepairFixture(t)
	ctx := context.Background()
	request := createRequest(t, f)

	_, err := f.uc.SetStatus(ctx, request.ID, entity.RepairStatusCancelled, "", nil, nil)
	require.NoError(t, err)

	_, err = f.uc.SetStatus(ctx, request.ID, entity.RepairStatusInProgress, "", nil, nil)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestCreateRequestRejectsUnknownService(t *testing.T) {
	f := newRepairFixture(t)

	_, err := f.uc.CreateRequest(context.Background(), "user-1", CreateRepairRequestInput{
		ServiceID:          "missing",
		DeviceType:         "laptop",
		DeviceBrand:        "ASUS",
		DeviceModel:        "X",
		ProblemDescription: "Не включается вообще",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
