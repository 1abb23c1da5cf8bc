package model

type Supplier struct {
	BaseModel
	CompanyName   string `gorm:"type:varchar(255);not null" json:"company_name" validate:"required"`
	ContactPerson string `gorm:"type:varchar(255)" json:"contact_person"`
	Phone         string `gorm:"type:varchar(30)" json:"phone"`
	Email         string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Address       string `gorm:"type:text" json:"address"`
	City          string `gorm:"type:varchar(100)" json:"city"`
	State         string `gorm:"type:varchar(100)" json:"state"`
	PostalCode    string `gorm:"type:varchar(20)" json:"postal_code"`

	Products []Product `gorm:"foreignKey:SupplierID" json:"products,omitempty" validate:"-"`
}
