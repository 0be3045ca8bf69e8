package model

import "time"

type MovieModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string    `gorm:"type:varchar(200);not null" json:"title"`
	Genre          *string   `gorm:"type:varchar(100)" json:"genre"`
	Rating         *int      `json:"rating"`
	PosterImageURL *string   `gorm:"column:poster_image_url;type:varchar(500)" json:"poster_image_url"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (MovieModel) TableName() string {
	return "movies"
}
