package repository

import (
	"gorm.io/gorm"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) ListByCourse(courseID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("course_id = ? AND available = ?", courseID, true).
		Order("name ASC").Find(&items).Error
	return items, err
}

// GetItemForCourse guards against adding another course's menu item to a cart.
func (r *MenuRepository) GetItemForCourse(courseID, itemID uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Where("id = ? AND course_id = ?", itemID, courseID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
