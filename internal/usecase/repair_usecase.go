package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
)

type RepairUseCase struct {
	serviceRepo repository.RepairServiceRepository
	requestRepo repository.RepairRequestRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

func NewRepairUseCase(
	serviceRepo repository.RepairServiceRepository,
	requestRepo repository.RepairRequestRepository,
	userRepo repository.UserRepository,
) *RepairUseCase {
	return &RepairUseCase{
		serviceRepo: serviceRepo,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

type CreateRepairRequestInput struct {
	ServiceID          string `json:"serviceId" validate:"required"`
	DeviceType         string `json:"deviceType" validate:"required"`
	DeviceBrand        string `json:"deviceBrand" validate:"required"`
	DeviceModel        string `json:"deviceModel" validate:"required"`
	SerialNumber       string `json:"serialNumber,omitempty"`
	ProblemDescription string `json:"problemDescription" validate:"required,min=10"`
}

func (uc *RepairUseCase) ListServices(ctx context.Context, category entity.RepairCategory) ([]*entity.RepairService, error) {
	if category == "" {
		return uc.serviceRepo.ListAll(ctx)
	}
	if !category.Valid() {
		return nil, errors.BadRequest("Invalid repair category", nil)
	}
	return uc.serviceRepo.ListByCategory(ctx, category)
}

func (uc *RepairUseCase) ListPopularServices(ctx context.Context) ([]*entity.RepairService, error) {
	return uc.serviceRepo.ListPopular(ctx)
}

func (uc *RepairUseCase) GetService(ctx context.Context, id string) (*entity.RepairService, error) {
	return uc.serviceRepo.GetByID(ctx, id)
}

// CreateRequest opens a repair request with a snapshot of the chosen
// service, so later price-list edits leave the request untouched.
func (uc *RepairUseCase) CreateRequest(ctx context.Context, userID string, input CreateRepairRequestInput) (*entity.RepairRequest, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.BadRequest("Unknown user", err)
		}
		return nil, err
	}

	service, err := uc.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.BadRequest("Unknown repair service", err)
		}
		return nil, err
	}

	now := uc.now()
	request := &entity.RepairRequest{
		ID:                 uuid.New().String(),
		RequestNumber:      generateRequestNumber(now),
		UserID:             userID,
		Service:            *service,
		DeviceType:         input.DeviceType,
		DeviceBrand:        input.DeviceBrand,
		DeviceModel:        input.DeviceModel,
		SerialNumber:       input.SerialNumber,
		ProblemDescription: input.ProblemDescription,
		Status:             entity.RepairStatusPending,
		StatusHistory: []entity.RepairStatusHistory{
			{Status: entity.RepairStatusPending, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (uc *RepairUseCase) ListRequests(ctx context.Context, userID string) ([]*entity.RepairRequest, error) {
	return uc.requestRepo.ListByUser(ctx, userID)
}

func (uc *RepairUseCase) GetRequestByID(ctx context.Context, id string) (*entity.RepairRequest, error) {
	return uc.requestRepo.GetByID(ctx, id)
}

func (uc *RepairUseCase) GetRequestByNumber(ctx context.Context, requestNumber string) (*entity.RepairRequest, error) {
	return uc.requestRepo.GetByNumber(ctx, requestNumber)
}

// SetStatus advances a repair request, appending one history entry.
// CompletedAt is stamped exactly when the request transitions to completed;
// completed and cancelled requests admit no further transitions.
func (uc *RepairUseCase) SetStatus(ctx context.Context, requestID string, status entity.RepairStatus, comment string, estimatedCost, finalCost *int64) (*entity.RepairRequest, error) {
	if !status.Valid() {
		return nil, errors.BadRequest("Invalid repair status", nil)
	}

	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status.Terminal() {
		return nil, errors.Conflict(fmt.Sprintf("Repair request is already %s", request.Status), nil)
	}

	now := uc.now()
	request.Status = status
	request.StatusHistory = append(request.StatusHistory, entity.RepairStatusHistory{
		Status:    status,
		Timestamp: now,
		Comment:   comment,
	})
	request.UpdatedAt = now
	if estimatedCost != nil {
		request.EstimatedCost = estimatedCost
	}
	if finalCost != nil {
		request.FinalCost = finalCost
	}
	if status == entity.RepairStatusCompleted {
		request.CompletedAt = &now
	}

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func generateRequestNumber(now time.Time) string {
	return fmt.Sprintf("REP-%d-%06d", now.Year(), now.UnixMilli()%1_000_000)
}
