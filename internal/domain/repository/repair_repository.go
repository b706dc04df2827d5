package repository

import (
	"context"

	"complab/internal/domain/entity"
)

type RepairServiceRepository interface {
	Create(ctx context.Context, service *entity.RepairService) error
	GetByID(ctx context.Context, id string) (*entity.RepairService, error)
	ListAll(ctx context.Context) ([]*entity.RepairService, error)
	ListByCategory(ctx context.Context, category entity.RepairCategory) ([]*entity.RepairService, error)
	ListPopular(ctx context.Context) ([]*entity.RepairService, error)
}

type RepairRequestRepository interface {
	Create(ctx context.Context, request *entity.RepairRequest) error
	GetByID(ctx context.Context, id string) (*entity.RepairRequest, error)
	GetByNumber(ctx context.Context, requestNumber string) (*entity.RepairRequest, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.RepairRequest, error)
	Update(ctx context.Context, request *entity.RepairRequest) error
}
