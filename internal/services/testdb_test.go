package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rsfinance/rsfinance-service/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database migrated with the full
// schema. Each test gets its own database, named after the test so shared
// cache mode keeps all pooled connections on the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.RefreshToken{},
		&models.LoanApplication{},
		&models.LoanType{},
		&models.ContactMessage{},
		&models.OrganizationInfo{},
		&models.SystemConfig{},
		&models.SystemLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
