package schedule

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/avtoservice/workshop-scheduler/internal/audit"
	dbpkg "github.com/avtoservice/workshop-scheduler/internal/db"
	"github.com/avtoservice/workshop-scheduler/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// One connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func newTestService(t *testing.T, db *gorm.DB) *models.Service {
	t.Helper()

	owner := models.User{
		Name:         "Owner",
		Email:        "owner@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&owner).Error)

	svc := models.Service{
		OwnerID:         owner.ID,
		Name:            "Main Street Garage",
		Address:         "1 Main St",
		Phone:           "+100000000",
		Email:           "garage@example.com",
		OpensAt:         "10:00",
		ClosesAt:        "20:00",
		WorkingWeekdays: "1,2,3,4,5",
		SlotMinutes:     60,
	}
	require.NoError(t, db.Create(&svc).Error)

	return &svc
}

func newTestDispatcher(db *gorm.DB) *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(db), zerolog.Nop())
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail error
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}
