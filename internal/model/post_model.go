package model

import "time"

// Timestamps are owned by the service layer (UTC), so gorm's automatic
// time tracking is disabled on both models.
type PostModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description string    `gorm:"type:varchar(2000);not null" json:"description"`
	Image       *string   `gorm:"type:varchar(500)" json:"image"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}
