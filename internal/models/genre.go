package models

type Genre struct {
	ID   uint    `gorm:"primaryKey"`
	Name *string `gorm:"size:255"`
}

func (Genre) TableName() string {
	return "genres"
}
