package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
)

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) repository.UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return wrapWrite("User", err)
	}
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, wrapRead("User", err)
	}
	return &user, nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "LOWER(email) = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, wrapRead("User", err)
	}
	return &user, nil
}

func (r *gormUserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&entity.User{ID: user.ID}).
		Select("first_name", "last_name", "phone", "avatar").
		Updates(user)
	if result.Error != nil {
		return wrapWrite("User", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("User", nil)
	}
	return nil
}

type gormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &gormAddressRepository{db: db}
}

func (r *gormAddressRepository) Create(ctx context.Context, address *entity.Address) error {
	if address.ID == "" {
		address.ID = uuid.NewString()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			err := tx.Model(&entity.Address{}).
				Where("user_id = ?", address.UserID).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(address).Error
	})
	if err != nil {
		return wrapWrite("Address", err)
	}
	return nil
}

func (r *gormAddressRepository) GetByID(ctx context.Context, id string) (*entity.Address, error) {
	var address entity.Address
	if err := r.db.WithContext(ctx).First(&address, "id = ?", id).Error; err != nil {
		return nil, wrapRead("Address", err)
	}
	return &address, nil
}

func (r *gormAddressRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Address, error) {
	var addresses []*entity.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, id ASC").
		Find(&addresses).Error
	if err != nil {
		return nil, errors.Internal("Failed to list addresses", err)
	}
	return addresses, nil
}

func (r *gormAddressRepository) GetDefaultByUser(ctx context.Context, userID string) (*entity.Address, error) {
	var address entity.Address
	err := r.db.WithContext(ctx).
		First(&address, "user_id = ? AND is_default = ?", userID, true).Error
	if err != nil {
		return nil, wrapRead("Address", err)
	}
	return &address, nil
}

// SetDefault clears the previous default and marks the new one in one
// transaction so two addresses can never both hold the flag.
func (r *gormAddressRepository) SetDefault(ctx context.Context, userID, addressID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Address{}).
			Where("id = ? AND user_id = ?", addressID, userID).
			Update("is_default", true)
		if result.Error != nil {
			return errors.Internal("Failed to set default address", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NotFound("Address", nil)
		}
		err := tx.Model(&entity.Address{}).
			Where("user_id = ? AND id <> ?", userID, addressID).
			Update("is_default", false).Error
		if err != nil {
			return errors.Internal("Failed to clear previous default address", err)
		}
		return nil
	})
}

func (r *gormAddressRepository) Update(ctx context.Context, address *entity.Address) error {
	result := r.db.WithContext(ctx).Model(&entity.Address{ID: address.ID}).
		Select("*").Omit("id", "user_id").Updates(address)
	if result.Error != nil {
		return wrapWrite("Address", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Address", nil)
	}
	return nil
}

func (r *gormAddressRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entity.Address{}, "id = ?", id)
	if result.Error != nil {
		return errors.Internal("Failed to delete address", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Address", nil)
	}
	return nil
}
