package repository

import (
	"gorm.io/gorm"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
)

type CourseRepository struct{ DB *gorm.DB }

func NewCourseRepository(db *gorm.DB) *CourseRepository { return &CourseRepository{DB: db} }

func (r *CourseRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Course{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *CourseRepository) Get(id uint) (*entity.Course, error) {
	var c entity.Course
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
