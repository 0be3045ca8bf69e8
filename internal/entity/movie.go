package entity

import "time"

type Movie struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Genre          *string   `json:"genre"`
	Rating         *int      `json:"rating"` // 1-5
	PosterImageURL *string   `json:"posterImageUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (m *Movie) ImageURL() string {
	if m.PosterImageURL == nil {
		return ""
	}
	return *m.PosterImageURL
}

func (m *Movie) SetImageURL(url string) {
	if url == "" {
		m.PosterImageURL = nil
		return
	}
	m.PosterImageURL = &url
}

func (m *Movie) Touch(now time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}
