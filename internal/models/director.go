package models

type Director struct {
	ID   uint    `gorm:"primaryKey"`
	Name *string `gorm:"size:255"`
}

func (Director) TableName() string {
	return "directors"
}
