package entity

import (
	"gorm.io/gorm"
)

// MenuItem prices are int64 minor currency units (cents).
type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Available   bool   `json:"available" gorm:"default:true"`

	CourseID uint   `json:"courseId" gorm:"index"`
	Course   Course `json:"-"`
}
