package models

import (
	"time"
)

// Modelable is an interface that determines if a struct is a model. It's
// simply models that compose models.Model.
type Modelable interface {
	IsAModel() // there's nothing specific about this function except that all Model structs will have it.
}

type Model struct {
	ID uint `gorm:"primaryKey"`
	// CreatedAt is set by GORM to time.Now when a record is first created.
	// See https://gorm.io/docs/conventions.html#Timestamp-Tracking
	CreatedAt time.Time
	// UpdatedAt is set by GORM to time.Now when a record is updated.
	UpdatedAt time.Time
}

func (Model) IsAModel() {}
