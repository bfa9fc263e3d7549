package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the (token, course) cart, or an empty unsaved one
// so callers can render a cart page without a row existing yet.
func (r *CartRepository) GetCartWithItems(token string, courseID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("token = ? AND course_id = ?", token, courseID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id ASC") }).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{Token: token, CourseID: courseID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(token string, courseID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("token = ? AND course_id = ?", token, courseID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{Token: token, CourseID: courseID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem merges into an existing line for the same menu item, otherwise
// appends. Merging keeps the line's note; a differing note still merges
// because notes are edited independently of quantity.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, row.MenuItemID).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) GetItem(token string, courseID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.token = ? AND carts.course_id = ?", itemID, token, courseID).
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) SaveItem(tx *gorm.DB, it *entity.CartItem) error {
	return tx.Save(it).Error
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.CartItem{}, itemID).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, token string, courseID uint) error {
	var c entity.Cart
	if err := tx.Where("token = ? AND course_id = ?", token, courseID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
