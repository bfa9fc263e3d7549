package entity

import (
	"gorm.io/gorm"
)

// Cart is keyed by (Token, CourseID): a customer browsing two courses gets
// two independent carts, so switching courses never leaks line items.
type Cart struct {
	gorm.Model
	Token string `json:"-" gorm:"uniqueIndex:idx_cart_token_course"`

	CourseID uint   `json:"courseId" gorm:"uniqueIndex:idx_cart_token_course"`
	Course   Course `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
