package entity

type Category struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Slug        string  `json:"slug" gorm:"uniqueIndex;not null"`
	Description string  `json:"description,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Image       string  `json:"image,omitempty"`
	ParentID    *string `json:"parentId,omitempty" gorm:"index"`
	Order       int     `json:"order" gorm:"column:sort_order"`
	IsActive    bool    `json:"isActive" gorm:"default:true"`
}

// CategoryWithChildren is a category plus its direct children, used by the
// catalog tree endpoint.
type CategoryWithChildren struct {
	Category
	Children []Category `json:"children"`
}

type CategoryBreadcrumb struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
