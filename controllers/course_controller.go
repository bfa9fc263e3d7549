package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/pkg/resp"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/repository"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/services"
)

type CourseController struct {
	Courses *repository.CourseRepository
	Menu    *repository.MenuRepository
	Holes   *services.HoleService
}

func NewCourseController(cr *repository.CourseRepository, mr *repository.MenuRepository, hs *services.HoleService) *CourseController {
	return &CourseController{Courses: cr, Menu: mr, Holes: hs}
}

// GET /courses/:courseId/menu
func (cc *CourseController) ListMenu(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}
	if exists, err := cc.Courses.Exists(courseID); err != nil {
		resp.ServerError(c, err)
		return
	} else if !exists {
		resp.NotFound(c, "course not found")
		return
	}

	items, err := cc.Menu.ListByCourse(courseID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /courses/:courseId/nearest-hole?lat=&lng=
func (cc *CourseController) NearestHole(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		resp.BadRequest(c, "lat and lng are required")
		return
	}

	nearest, err := cc.Holes.Nearest(courseID, lat, lng)
	if err != nil {
		if errors.Is(err, services.ErrNoHoleReturned) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, nearest)
}
