package models

// Movie references its director and genre by id only. Neither key is enforced:
// a movie may point at a row that was never created or has since been deleted.
type Movie struct {
	ID          uint    `gorm:"primaryKey"`
	Title       *string `gorm:"size:255"`
	Description *string `gorm:"size:255"`
	Trailer     *string `gorm:"size:255"`
	Year        *int
	Rating      *int
	GenreID     *uint `gorm:"index"`
	DirectorID  *uint `gorm:"index"`
}

func (Movie) TableName() string {
	return "movies"
}
