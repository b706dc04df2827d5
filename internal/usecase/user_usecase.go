package usecase

import (
	"context"

	"github.com/google/uuid"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
)

type UserUseCase struct {
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
}

func NewUserUseCase(userRepo repository.UserRepository, addressRepo repository.AddressRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, addressRepo: addressRepo}
}

type UserProfile struct {
	User           entity.User      `json:"user"`
	Addresses      []entity.Address `json:"addresses"`
	DefaultAddress *entity.Address  `json:"defaultAddress,omitempty"`
}

type AddressInput struct {
	Title      string `json:"title" validate:"required"`
	FullName   string `json:"fullName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	City       string `json:"city" validate:"required"`
	Street     string `json:"street" validate:"required"`
	Building   string `json:"building" validate:"required"`
	Apartment  string `json:"apartment,omitempty"`
	PostalCode string `json:"postalCode" validate:"required"`
	IsDefault  bool   `json:"isDefault"`
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*UserProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	addresses, err := uc.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &UserProfile{
		User:      *user,
		Addresses: make([]entity.Address, 0, len(addresses)),
	}
	for _, a := range addresses {
		profile.Addresses = append(profile.Addresses, *a)
	}

	defaultAddress, err := uc.addressRepo.GetDefaultByUser(ctx, userID)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}
	profile.DefaultAddress = defaultAddress
	return profile, nil
}

func (uc *UserUseCase) CreateAddress(ctx context.Context, userID string, input AddressInput) (*entity.Address, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.BadRequest("Unknown user", err)
		}
		return nil, err
	}

	address := &entity.Address{
		ID:         uuid.New().String(),
		UserID:     userID,
		Title:      input.Title,
		FullName:   input.FullName,
		Phone:      input.Phone,
		City:       input.City,
		Street:     input.Street,
		Building:   input.Building,
		Apartment:  input.Apartment,
		PostalCode: input.PostalCode,
		IsDefault:  input.IsDefault,
	}
	if err := uc.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (uc *UserUseCase) UpdateAddress(ctx context.Context, userID, addressID string, input AddressInput) (*entity.Address, error) {
	address, err := uc.getOwnedAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	address.Title = input.Title
	address.FullName = input.FullName
	address.Phone = input.Phone
	address.City = input.City
	address.Street = input.Street
	address.Building = input.Building
	address.Apartment = input.Apartment
	address.PostalCode = input.PostalCode

	if err := uc.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}
	if input.IsDefault && !address.IsDefault {
		if err := uc.addressRepo.SetDefault(ctx, userID, addressID); err != nil {
			return nil, err
		}
		address.IsDefault = true
	}
	return address, nil
}

func (uc *UserUseCase) DeleteAddress(ctx context.Context, userID, addressID string) error {
	if _, err := uc.getOwnedAddress(ctx, userID, addressID); err != nil {
		return err
	}
	return uc.addressRepo.Delete(ctx, addressID)
}

// SetDefaultAddress marks one address as the user's default and clears the
// flag on all others; at most one default survives any interleaving.
func (uc *UserUseCase) SetDefaultAddress(ctx context.Context, userID, addressID string) error {
	if _, err := uc.getOwnedAddress(ctx, userID, addressID); err != nil {
		return err
	}
	return uc.addressRepo.SetDefault(ctx, userID, addressID)
}

func (uc *UserUseCase) getOwnedAddress(ctx context.Context, userID, addressID string) (*entity.Address, error) {
	address, err := uc.addressRepo.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if address.UserID != userID {
		return nil, errors.NotFound("Address", nil)
	}
	return address, nil
}
