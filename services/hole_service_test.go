package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/repository"
)

func TestNearestHolePicksClosest(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db)
	for n, lat := range map[int]float64{1: 45.0000, 7: 45.0100, 18: 45.0200} {
		require.NoError(t, db.Create(&entity.Hole{
			Number: n, Latitude: lat, Longitude: -75.0, CourseID: course.ID,
		}).Error)
	}
	svc := NewHoleService(repository.NewHoleRepository(db))

	nearest, err := svc.Nearest(course.ID, 45.0101, -75.0)
	require.NoError(t, err)
	assert.Equal(t, 7, nearest.HoleNumber)
	assert.Less(t, nearest.Distance, 100.0) // ~11m off hole 7's pin
}

func TestNearestHoleEmptyCourse(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db)
	svc := NewHoleService(repository.NewHoleRepository(db))

	_, err := svc.Nearest(course.ID, 45.0, -75.0)
	assert.ErrorIs(t, err, ErrNoHoleReturned)
}

func TestNearestHoleIgnoresOtherCourses(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db)
	other := &entity.Course{Name: "Other", Slug: "other"}
	require.NoError(t, db.Create(other).Error)

	// the other course has a hole right on top of the query point
	require.NoError(t, db.Create(&entity.Hole{Number: 3, Latitude: 45.0, Longitude: -75.0, CourseID: other.ID}).Error)
	require.NoError(t, db.Create(&entity.Hole{Number: 9, Latitude: 45.1, Longitude: -75.0, CourseID: course.ID}).Error)

	svc := NewHoleService(repository.NewHoleRepository(db))
	nearest, err := svc.Nearest(course.ID, 45.0, -75.0)
	require.NoError(t, err)
	assert.Equal(t, 9, nearest.HoleNumber)
}
