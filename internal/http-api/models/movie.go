package models

import (
	"time"

	"github.com/lib/pq"
)

type Movie struct {
	ID         int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	ImdbID     string         `json:"imdb_id" gorm:"uniqueIndex;size:20;not null"`
	Title      string         `json:"title" gorm:"not null"`
	Year       *int           `json:"year,omitempty"`
	Plot       *string        `json:"plot,omitempty" gorm:"type:text"`
	Director   *string        `json:"director,omitempty"`
	Actors     pq.StringArray `json:"actors" gorm:"type:text[]"`
	Genres     pq.StringArray `json:"genres" gorm:"type:text[]"`
	PosterURL  *string        `json:"poster_url,omitempty"`
	ImdbRating *float64       `json:"imdb_rating,omitempty" gorm:"type:decimal(3,1)"`
	UserRating *float64       `json:"user_rating,omitempty" gorm:"type:decimal(3,1)"`
	Watched    bool           `json:"watched" gorm:"not null;default:false"`
	WatchDate  *time.Time     `json:"watch_date,omitempty"`
	Notes      *string        `json:"notes,omitempty" gorm:"type:text"`
	Favorite   bool           `json:"favorite" gorm:"not null;default:false"`
	CreatedAt  time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Movie) TableName() string {
	return "movies"
}
