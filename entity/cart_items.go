package entity

import (
	"gorm.io/gorm"
)

// CartItem snapshots the menu item at add time; UnitPrice stays what the
// customer saw even if the menu price changes before checkout.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId" gorm:"index"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	ItemName  string `json:"itemName"`
	ImageURL  string `json:"imageUrl"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Note      string `json:"note"`
}
