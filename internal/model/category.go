package model

type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty" validate:"-"`
}

// CategoryWithCount is the listing projection including how many products
// reference the category.
type CategoryWithCount struct {
	Category
	ProductCount int64 `json:"product_count"`
}
