package entity

import (
	"gorm.io/gorm"
)

type Hole struct {
	gorm.Model
	Number    int     `json:"number"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	CourseID uint   `json:"courseId" gorm:"index"`
	Course   Course `json:"-"`
}
