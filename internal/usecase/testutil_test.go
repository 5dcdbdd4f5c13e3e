package usecase

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"clinic-directory/config"
	"clinic-directory/internal/domain/entity"
	"clinic-directory/internal/domain/repository"
	"clinic-directory/internal/infrastructure/storage"
	repoImpl "clinic-directory/internal/repository"
	"clinic-directory/pkg/jwt"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Serialize access so concurrent tests never hit SQLITE_BUSY.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.Admin{},
		&entity.Hospital{},
		&entity.Occupation{},
		&entity.Doctor{},
		&entity.Patient{},
		&entity.BookedAppointment{},
	)
	require.NoError(t, err)

	return db
}

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AdminExpiry:   72 * time.Hour,
		DoctorExpiry:  30 * time.Minute,
		PatientExpiry: 30 * time.Minute,
	})
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestSessionStore() repository.SessionStore {
	return repoImpl.NewMemorySessionStore()
}

func newTestAttachmentStore(t *testing.T) storage.AttachmentStore {
	t.Helper()

	store, err := storage.NewAttachmentStore(afero.NewMemMapFs(), "uploads")
	require.NoError(t, err)
	return store
}
