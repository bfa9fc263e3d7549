package utils

import "github.com/gin-gonic/gin"

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CurrentCourseID is the course the logged-in employee belongs to
// (0 for admins, who may act on any course).
func CurrentCourseID(c *gin.Context) uint {
	v, _ := c.Get("courseId")
	switch id := v.(type) {
	case uint:
		return id
	case float64:
		return uint(id)
	default:
		return 0
	}
}

// CanAccessCourse reports whether the logged-in staffer may act on courseID.
func CanAccessCourse(c *gin.Context, courseID uint) bool {
	if CurrentRole(c) == "admin" {
		return true
	}
	return CurrentCourseID(c) == courseID
}
