package entity

import "time"

type Post struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Post) ImageURL() string {
	if p.Image == nil {
		return ""
	}
	return *p.Image
}

func (p *Post) SetImageURL(url string) {
	if url == "" {
		p.Image = nil
		return
	}
	p.Image = &url
}

func (p *Post) Touch(now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
