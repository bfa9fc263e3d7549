package entity

import (
	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	Name string `json:"name"`
	Slug string `json:"slug" gorm:"uniqueIndex"`

	Holes     []Hole     `json:"-"`
	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
