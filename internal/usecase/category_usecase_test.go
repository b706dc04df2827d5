package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complab/internal/adapter/repository"
	"complab/internal/domain/entity"
	"complab/pkg/errors"
)

func newCategoryFixture(t *testing.T) *CategoryUseCase {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewMemoryCategoryRepository()

	computers := "1"
	components := "2"
	for _, c := range []*entity.Category{
		{ID: "1", Name: "Компьютеры и ноутбуки", Slug: "computers", Order: 1, IsActive: true},
		{ID: "2", Name: "Комплектующие", Slug: "components", Order: 2, IsActive: true},
		{ID: "1-1", Name: "Ноутбуки", Slug: "laptops", ParentID: &computers, Order: 1, IsActive: true},
		{ID: "1-2", Name: "Настольные ПК", Slug: "desktop-pcs", ParentID: &computers, Order: 2, IsActive: true},
		{ID: "2-1", Name: "Процессоры", Slug: "processors", ParentID: &components, Order: 1, IsActive: false},
	} {
		require.NoError(t, repo.Create(ctx, c))
	}
	return NewCategoryUseCase(repo)
}

func TestCategoryTree(t *testing.T) {
	uc := newCategoryFixture(t)

	tree, err := uc.Tree(context.Background())
	require.NoError(t, err)
	require.Len(t, tree, 2)

	bySlug := map[string]*entity.CategoryWithChildren{}
	for _, node := range tree {
		bySlug[node.Slug] = node
	}
	assert.Len(t, bySlug["computers"].Children, 2)
	assert.Len(t, bySlug["components"].Children, 1)
}

func TestGetBySlugBreadcrumbs(t *testing.T) {
	uc := newCategoryFixture(t)

	detail, err := uc.GetBySlug(context.Background(), "laptops")
	require.NoError(t, err)

	require.Len(t, detail.Breadcrumbs, 2)
	assert.Equal(t, "computers", detail.Breadcrumbs[0].Slug)
	assert.Equal(t, "laptops", detail.Breadcrumbs[1].Slug)
	assert.Empty(t, detail.Children)
}

func TestGetBySlugRootHasSingleBreadcrumb(t *testing.T) {
	uc := newCategoryFixture(t)

	detail, err := uc.GetBySlug(context.Background(), "computers")
	require.NoError(t, err)
	require.Len(t, detail.Breadcrumbs, 1)
	assert.Equal(t, "computers", detail.Breadcrumbs[0].Slug)
	assert.Len(t, detail.Children, 2)
}

func TestGetBySlugAbsent(t *testing.T) {
	uc := newCategoryFixture(t)
	_, err := uc.GetBySlug(context.Background(), "no-such-category")
	assert.True(t, errors.IsNotFound(err))
}

func TestListByActive(t *testing.T) {
	uc := newCategoryFixture(t)

	active, err := uc.ListByActive(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, active, 4)

	inactive, err := uc.ListByActive(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, "processors", inactive[0].Slug)
}
