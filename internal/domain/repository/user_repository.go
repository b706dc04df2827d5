package repository

import (
	"context"

	"complab/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	GetByID(ctx context.Context, id string) (*entity.Address, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Address, error)
	GetDefaultByUser(ctx context.Context, userID string) (*entity.Address, error)
	// SetDefault marks one address as default and clears the flag on the
	// user's other addresses in the same transaction.
	SetDefault(ctx context.Context, userID, addressID string) error
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id string) error
}
