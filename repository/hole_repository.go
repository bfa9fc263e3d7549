package repository

import (
	"gorm.io/gorm"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
)

type HoleRepository struct{ DB *gorm.DB }

func NewHoleRepository(db *gorm.DB) *HoleRepository { return &HoleRepository{DB: db} }

func (r *HoleRepository) ListByCourse(courseID uint) ([]entity.Hole, error) {
	var holes []entity.Hole
	err := r.DB.Where("course_id = ?", courseID).Order("number ASC").Find(&holes).Error
	return holes, err
}
