package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
)

type gormRepairServiceRepository struct {
	db *gorm.DB
}

func NewGormRepairServiceRepository(db *gorm.DB) repository.RepairServiceRepository {
	return &gormRepairServiceRepository{db: db}
}

func (r *gormRepairServiceRepository) Create(ctx context.Context, service *entity.RepairService) error {
	if service.ID == "" {
		service.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return wrapWrite("Repair service", err)
	}
	return nil
}

func (r *gormRepairServiceRepository) GetByID(ctx context.Context, id string) (*entity.RepairService, error) {
	var service entity.RepairService
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, wrapRead("Repair service", err)
	}
	return &service, nil
}

func (r *gormRepairServiceRepository) ListAll(ctx context.Context) ([]*entity.RepairService, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *gormRepairServiceRepository) ListByCategory(ctx context.Context, category entity.RepairCategory) ([]*entity.RepairService, error) {
	return r.list(r.db.WithContext(ctx).Where("category = ?", category))
}

func (r *gormRepairServiceRepository) ListPopular(ctx context.Context) ([]*entity.RepairService, error) {
	return r.list(r.db.WithContext(ctx).Where("is_popular = ?", true))
}

func (r *gormRepairServiceRepository) list(query *gorm.DB) ([]*entity.RepairService, error) {
	var services []*entity.RepairService
	if err := query.Order("name ASC").Find(&services).Error; err != nil {
		return nil, errors.Internal("Failed to list repair services", err)
	}
	return services, nil
}

type gormRepairRequestRepository struct {
	db *gorm.DB
}

func NewGormRepairRequestRepository(db *gorm.DB) repository.RepairRequestRepository {
	return &gormRepairRequestRepository{db: db}
}

func (r *gormRepairRequestRepository) Create(ctx context.Context, request *entity.RepairRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	now := time.Now()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	request.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return wrapWrite("Repair request", err)
	}
	return nil
}

func (r *gormRepairRequestRepository) GetByID(ctx context.Context, id string) (*entity.RepairRequest, error) {
	var request entity.RepairRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, wrapRead("Repair request", err)
	}
	return &request, nil
}

func (r *gormRepairRequestRepository) GetByNumber(ctx context.Context, requestNumber string) (*entity.RepairRequest, error) {
	var request entity.RepairRequest
	if err := r.db.WithContext(ctx).First(&request, "request_number = ?", requestNumber).Error; err != nil {
		return nil, wrapRead("Repair request", err)
	}
	return &request, nil
}

func (r *gormRepairRequestRepository) ListByUser(ctx context.Context, userID string) ([]*entity.RepairRequest, error) {
	var requests []*entity.RepairRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Find(&requests).Error
	if err != nil {
		return nil, errors.Internal("Failed to list repair requests", err)
	}
	return requests, nil
}

func (r *gormRepairRequestRepository) Update(ctx context.Context, request *entity.RepairRequest) error {
	request.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&entity.RepairRequest{ID: request.ID}).
		Select("status", "status_history", "estimated_cost", "final_cost", "completed_at", "updated_at").
		Updates(request)
	if result.Error != nil {
		return wrapWrite("Repair request", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Repair request", nil)
	}
	return nil
}
