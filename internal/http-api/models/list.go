package models

import "time"

// List is a named grouping of movies. Membership is a soft reference:
// deleting a movie just drops it from the join table.
type List struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// association
	Movies []Movie `json:"movies,omitempty" gorm:"many2many:list_movies;constraint:OnDelete:CASCADE;"`
}

func (List) TableName() string {
	return "lists"
}
