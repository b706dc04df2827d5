package usecase

import (
	"context"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// CategoryDetail is a category with its direct children and the breadcrumb
// trail from the root down to the category itself.
type CategoryDetail struct {
	entity.Category
	Children    []entity.Category           `json:"children"`
	Breadcrumbs []entity.CategoryBreadcrumb `json:"breadcrumbs"`
}

func (uc *CategoryUseCase) ListAll(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.ListAll(ctx)
}

func (uc *CategoryUseCase) ListByActive(ctx context.Context, isActive bool) ([]*entity.Category, error) {
	return uc.categoryRepo.ListByActive(ctx, isActive)
}

func (uc *CategoryUseCase) ListRoots(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.ListRoots(ctx)
}

func (uc *CategoryUseCase) ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error) {
	if _, err := uc.categoryRepo.GetByID(ctx, parentID); err != nil {
		return nil, err
	}
	return uc.categoryRepo.ListChildren(ctx, parentID)
}

// Tree assembles root categories with their direct children, one level deep.
func (uc *CategoryUseCase) Tree(ctx context.Context) ([]*entity.CategoryWithChildren, error) {
	all, err := uc.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	childrenOf := make(map[string][]entity.Category)
	for _, c := range all {
		if c.ParentID != nil {
			childrenOf[*c.ParentID] = append(childrenOf[*c.ParentID], *c)
		}
	}

	var tree []*entity.CategoryWithChildren
	for _, c := range all {
		if c.ParentID != nil {
			continue
		}
		node := &entity.CategoryWithChildren{
			Category: *c,
			Children: childrenOf[c.ID],
		}
		if node.Children == nil {
			node.Children = []entity.Category{}
		}
		tree = append(tree, node)
	}
	return tree, nil
}

func (uc *CategoryUseCase) GetBySlug(ctx context.Context, slug string) (*CategoryDetail, error) {
	category, err := uc.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	children, err := uc.categoryRepo.ListChildren(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	breadcrumbs, err := uc.breadcrumbs(ctx, category)
	if err != nil {
		return nil, err
	}

	detail := &CategoryDetail{
		Category:    *category,
		Breadcrumbs: breadcrumbs,
		Children:    make([]entity.Category, 0, len(children)),
	}
	for _, child := range children {
		detail.Children = append(detail.Children, *child)
	}
	return detail, nil
}

const maxCategoryDepth = 10

// breadcrumbs walks the parent chain up to the root. The depth cap guards
// against a cyclic parent reference in bad data.
func (uc *CategoryUseCase) breadcrumbs(ctx context.Context, category *entity.Category) ([]entity.CategoryBreadcrumb, error) {
	trail := []entity.CategoryBreadcrumb{{ID: category.ID, Name: category.Name, Slug: category.Slug}}

	current := category
	for depth := 0; current.ParentID != nil; depth++ {
		if depth >= maxCategoryDepth {
			return nil, errors.Internal("category hierarchy too deep", nil)
		}
		parent, err := uc.categoryRepo.GetByID(ctx, *current.ParentID)
		if err != nil {
			if errors.IsNotFound(err) {
				break
			}
			return nil, err
		}
		trail = append([]entity.CategoryBreadcrumb{{ID: parent.ID, Name: parent.Name, Slug: parent.Slug}}, trail...)
		current = parent
	}
	return trail, nil
}
