package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"complab/internal/domain/entity"
	"complab/pkg/errors"
)

// MemoryCategoryRepository is the in-memory test double for categories.
type MemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories []*entity.Category
}

func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{}
}

func (r *MemoryCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	for _, c := range r.categories {
		if c.Slug == category.Slug {
			return errors.Conflict("Category already exists", nil)
		}
	}
	clone := *category
	r.categories = append(r.categories, &clone)
	return nil
}

func (r *MemoryCategoryRepository) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

func (r *MemoryCategoryRepository) GetBySlug(_ context.Context, slug string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.Slug == slug {
			clone := *c
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

func (r *MemoryCategoryRepository) ListAll(_ context.Context) ([]*entity.Category, error) {
	return r.listWhere(func(*entity.Category) bool { return true }), nil
}

func (r *MemoryCategoryRepository) ListRoots(_ context.Context) ([]*entity.Category, error) {
	return r.listWhere(func(c *entity.Category) bool { return c.ParentID == nil }), nil
}

func (r *MemoryCategoryRepository) ListChildren(_ context.Context, parentID string) ([]*entity.Category, error) {
	return r.listWhere(func(c *entity.Category) bool {
		return c.ParentID != nil && *c.ParentID == parentID
	}), nil
}

func (r *MemoryCategoryRepository) ListByActive(_ context.Context, isActive bool) ([]*entity.Category, error) {
	return r.listWhere(func(c *entity.Category) bool { return c.IsActive == isActive }), nil
}

func (r *MemoryCategoryRepository) listWhere(pred func(*entity.Category) bool) []*entity.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Category
	for _, c := range r.categories {
		if pred(c) {
			clone := *c
			result = append(result, &clone)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Order < result[j].Order })
	return result
}

func (r *MemoryCategoryRepository) Update(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.categories {
		if c.ID == category.ID {
			clone := *category
			r.categories[i] = &clone
			return nil
		}
	}
	return errors.NotFound("Category", nil)
}

func (r *MemoryCategoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Category", nil)
}

// MemoryRepairServiceRepository is the in-memory test double for the repair
// service catalog.
type MemoryRepairServiceRepository struct {
	mu       sync.RWMutex
	services []*entity.RepairService
}

func NewMemoryRepairServiceRepository() *MemoryRepairServiceRepository {
	return &MemoryRepairServiceRepository{}
}

func (r *MemoryRepairServiceRepository) Create(_ context.Context, service *entity.RepairService) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if service.ID == "" {
		service.ID = uuid.NewString()
	}
	clone := *service
	r.services = append(r.services, &clone)
	return nil
}

func (r *MemoryRepairServiceRepository) GetByID(_ context.Context, id string) (*entity.RepairService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.services {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Repair service", nil)
}

func (r *MemoryRepairServiceRepository) ListAll(_ context.Context) ([]*entity.RepairService, error) {
	return r.listWhere(func(*entity.RepairService) bool { return true }), nil
}

func (r *MemoryRepairServiceRepository) ListByCategory(_ context.Context, category entity.RepairCategory) ([]*entity.RepairService, error) {
	return r.listWhere(func(s *entity.RepairService) bool { return s.Category == category }), nil
}

func (r *MemoryRepairServiceRepository) ListPopular(_ context.Context) ([]*entity.RepairService, error) {
	return r.listWhere(func(s *entity.RepairService) bool { return s.IsPopular }), nil
}

func (r *MemoryRepairServiceRepository) listWhere(pred func(*entity.RepairService) bool) []*entity.RepairService {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.RepairService
	for _, s := range r.services {
		if pred(s) {
			clone := *s
			result = append(result, &clone)
		}
	}
	return result
}

// MemoryRepairRequestRepository is the in-memory test double for repair
// requests.
type MemoryRepairRequestRepository struct {
	mu       sync.RWMutex
	requests []*entity.RepairRequest
}

func NewMemoryRepairRequestRepository() *MemoryRepairRequestRepository {
	return &MemoryRepairRequestRepository{}
}

func (r *MemoryRepairRequestRepository) Create(_ context.Context, request *entity.RepairRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	now := time.Now()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	request.UpdatedAt = now
	clone := *request
	r.requests = append(r.requests, &clone)
	return nil
}

func (r *MemoryRepairRequestRepository) GetByID(_ context.Context, id string) (*entity.RepairRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, req := range r.requests {
		if req.ID == id {
			clone := *req
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Repair request", nil)
}

func (r *MemoryRepairRequestRepository) GetByNumber(_ context.Context, requestNumber string) (*entity.RepairRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, req := range r.requests {
		if req.RequestNumber == requestNumber {
			clone := *req
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Repair request", nil)
}

func (r *MemoryRepairRequestRepository) ListByUser(_ context.Context, userID string) ([]*entity.RepairRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.RepairRequest
	for _, req := range r.requests {
		if req.UserID == userID {
			clone := *req
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *MemoryRepairRequestRepository) Update(_ context.Context, request *entity.RepairRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, req := range r.requests {
		if req.ID == request.ID {
			clone := *request
			clone.CreatedAt = req.CreatedAt
			clone.UpdatedAt = time.Now()
			r.requests[i] = &clone
			request.UpdatedAt = clone.UpdatedAt
			return nil
		}
	}
	return errors.NotFound("Repair request", nil)
}

// MemoryUserRepository is the in-memory test double for users.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []*entity.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return errors.Conflict("User already exists", nil)
		}
	}
	clone := *user
	r.users = append(r.users, &clone)
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *MemoryUserRepository) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == user.ID {
			clone := *user
			r.users[i] = &clone
			return nil
		}
	}
	return errors.NotFound("User", nil)
}

// MemoryAddressRepository is the in-memory test double for addresses.
type MemoryAddressRepository struct {
	mu        sync.RWMutex
	addresses []*entity.Address
}

func NewMemoryAddressRepository() *MemoryAddressRepository {
	return &MemoryAddressRepository{}
}

func (r *MemoryAddressRepository) Create(_ context.Context, address *entity.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if address.ID == "" {
		address.ID = uuid.NewString()
	}
	if address.IsDefault {
		for _, a := range r.addresses {
			if a.UserID == address.UserID {
				a.IsDefault = false
			}
		}
	}
	clone := *address
	r.addresses = append(r.addresses, &clone)
	return nil
}

func (r *MemoryAddressRepository) GetByID(_ context.Context, id string) (*entity.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.addresses {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Address", nil)
}

func (r *MemoryAddressRepository) ListByUser(_ context.Context, userID string) ([]*entity.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Address
	for _, a := range r.addresses {
		if a.UserID == userID {
			clone := *a
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *MemoryAddressRepository) GetDefaultByUser(_ context.Context, userID string) (*entity.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.addresses {
		if a.UserID == userID && a.IsDefault {
			clone := *a
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Address", nil)
}

func (r *MemoryAddressRepository) SetDefault(_ context.Context, userID, addressID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := false
	for _, a := range r.addresses {
		if a.ID == addressID && a.UserID == userID {
			found = true
		}
	}
	if !found {
		return errors.NotFound("Address", nil)
	}
	for _, a := range r.addresses {
		if a.UserID == userID {
			a.IsDefault = a.ID == addressID
		}
	}
	return nil
}

func (r *MemoryAddressRepository) Update(_ context.Context, address *entity.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.addresses {
		if a.ID == address.ID {
			clone := *address
			clone.UserID = a.UserID
			r.addresses[i] = &clone
			return nil
		}
	}
	return errors.NotFound("Address", nil)
}

func (r *MemoryAddressRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.addresses {
		if a.ID == id {
			r.addresses = append(r.addresses[:i], r.addresses[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Address", nil)
}

// MemoryBannerRepository is the in-memory test double for banners.
type MemoryBannerRepository struct {
	mu      sync.RWMutex
	banners []*entity.Banner
}

func NewMemoryBannerRepository() *MemoryBannerRepository {
	return &MemoryBannerRepository{}
}

func (r *MemoryBannerRepository) Create(_ context.Context, banner *entity.Banner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if banner.ID == "" {
		banner.ID = uuid.NewString()
	}
	clone := *banner
	r.banners = append(r.banners, &clone)
	return nil
}

func (r *MemoryBannerRepository) ListVisible(_ context.Context, bannerType entity.BannerType, now time.Time) ([]*entity.Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Banner
	for _, b := range r.banners {
		if b.Type == bannerType && b.VisibleAt(now) {
			clone := *b
			result = append(result, &clone)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Order < result[j].Order })
	return result, nil
}
