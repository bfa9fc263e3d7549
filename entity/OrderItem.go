package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a line fixed at order time. ItemName and UnitPrice are
// point-in-time copies of the menu item, not live references.
type OrderItem struct {
	gorm.Model
	ItemName  string `json:"item_name"`
	Qty       int    `json:"quantity"`
	UnitPrice int64  `json:"price"`

	OrderID uint  `json:"orderId" gorm:"index"`
	Order   Order `json:"-"`
}
