package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/pkg/payments"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Course{}, &entity.Hole{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func createCourse(t *testing.T, db *gorm.DB) *entity.Course {
	t.Helper()
	c := &entity.Course{Name: "Test Course", Slug: "test-course"}
	require.NoError(t, db.Create(c).Error)
	return c
}

func createMenuItem(t *testing.T, db *gorm.DB, courseID uint, name string, price int64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Name: name, Price: price, Available: true, CourseID: courseID}
	require.NoError(t, db.Create(m).Error)
	return m
}

// stubProvider records checkout sessions instead of calling the provider.
type stubProvider struct {
	calls int
	last  *payments.SessionParams
	err   error
	sess  payments.Session
}

func (s *stubProvider) CreateSession(ctx context.Context, p *payments.SessionParams) (*payments.Session, error) {
	s.calls++
	s.last = p
	if s.err != nil {
		return nil, s.err
	}
	return &s.sess, nil
}

// captureEvents records broadcasts instead of pushing to websockets.
type captureEvents struct {
	created []*entity.Order
	updated []*entity.Order
}

func (e *captureEvents) OrderCreated(o *entity.Order) { e.created = append(e.created, o) }
func (e *captureEvents) OrderUpdated(o *entity.Order) { e.updated = append(e.updated, o) }
