package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/repository"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found for this course")
	ErrCartItemNotFound = errors.New("cart item not found")
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Qty        int    `json:"qty" binding:"min=0"`
	Note       string `json:"note"`
}

func (s *CartService) Get(token string, courseID uint) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetCartWithItems(token, courseID)
	if err != nil {
		return nil, 0, err
	}
	return c, Subtotal(c.Items), nil
}

// Subtotal is sum(unit price × qty) over the lines, minor units. Pure.
func Subtotal(items []entity.CartItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.UnitPrice * int64(it.Qty)
	}
	return sum
}

// Add puts a menu item in the (token, course) cart: an existing line for the
// same item gains quantity, otherwise a new line snapshots name and price.
func (s *CartService) Add(token string, courseID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	m, err := s.MenuRepo.GetItemForCourse(courseID, in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}

	c, err := s.CartRepo.GetOrCreateCart(token, courseID)
	if err != nil {
		return err
	}

	line := &entity.CartItem{
		MenuItemID: m.ID,
		ItemName:   m.Name,
		ImageURL:   m.ImageURL,
		Qty:        in.Qty,
		UnitPrice:  m.Price,
		Note:       in.Note,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

// UpdateQty applies a signed delta, floored at zero; a line reaching zero is
// removed rather than kept empty.
func (s *CartService) UpdateQty(token string, courseID, itemID uint, delta int) error {
	it, err := s.CartRepo.GetItem(token, courseID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}

	qty := it.Qty + delta
	if qty < 0 {
		qty = 0
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if qty == 0 {
			return s.CartRepo.DeleteItem(tx, it.ID)
		}
		it.Qty = qty
		return s.CartRepo.SaveItem(tx, it)
	})
}

func (s *CartService) SetNote(token string, courseID, itemID uint, note string) error {
	it, err := s.CartRepo.GetItem(token, courseID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}
	it.Note = note
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.SaveItem(tx, it)
	})
}

func (s *CartService) Remove(token string, courseID, itemID uint) error {
	it, err := s.CartRepo.GetItem(token, courseID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.DeleteItem(tx, it.ID)
	})
}

// Clear is idempotent: clearing an absent cart is a no-op.
func (s *CartService) Clear(token string, courseID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, token, courseID)
	})
}
