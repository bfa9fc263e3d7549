package entity

import (
	"gorm.io/gorm"
)

// User is a staff account (employee or admin). Customers never log in;
// they order through the public cart/checkout surface.
type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"not null;default:employee" json:"role"`

	// Employees belong to one course; admins have CourseID 0 and may act
	// on any course.
	CourseID uint   `json:"courseId"`
	Course   Course `json:"-"`
}
