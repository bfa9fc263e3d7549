package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedDemoCourse creates the pilot course with 18 holes and a starter menu
// so a fresh install is orderable immediately.
func SeedDemoCourse() error {
	db := DB()

	var course entity.Course
	if err := db.FirstOrCreate(&course, entity.Course{Slug: "under-par-pilot"}).Error; err != nil {
		return err
	}
	if course.Name == "" {
		course.Name = "Under Par Pilot Course"
		if err := db.Save(&course).Error; err != nil {
			return err
		}
	}

	var holeCount int64
	db.Model(&entity.Hole{}).Where("course_id = ?", course.ID).Count(&holeCount)
	if holeCount == 0 {
		// walking route across the property; close enough for nearest-hole
		baseLat, baseLng := 45.3841, -75.6972
		for n := 1; n <= 18; n++ {
			h := entity.Hole{
				Number:    n,
				Latitude:  baseLat + float64(n)*0.0009,
				Longitude: baseLng + float64(n%6)*0.0012,
				CourseID:  course.ID,
			}
			if err := db.Create(&h).Error; err != nil {
				return err
			}
		}
	}

	var menuCount int64
	db.Model(&entity.MenuItem{}).Where("course_id = ?", course.ID).Count(&menuCount)
	if menuCount == 0 {
		items := []entity.MenuItem{
			{Name: "Clubhouse Burger", Description: "Char-grilled, brioche bun", Price: 1200, CourseID: course.ID},
			{Name: "Turkey Wrap", Description: "With cranberry aioli", Price: 1050, CourseID: course.ID},
			{Name: "Hot Dog", Description: "All beef", Price: 650, CourseID: course.ID},
			{Name: "Domestic Beer", Description: "473ml can", Price: 700, CourseID: course.ID},
			{Name: "Lemonade", Description: "Fresh squeezed", Price: 450, CourseID: course.ID},
		}
		for i := range items {
			if err := db.Create(&items[i]).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
