package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Transaction{}, &model.AppURL{}, &model.Balance{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string, active bool) {
	t.Helper()
	require.NoError(t, db.Create(&model.User{
		ID:          id,
		FederatedID: "sub-" + id,
		Email:       id + "@example.com",
		UserName:    id,
		IsActive:    active,
	}).Error)
}

var testLogger = logger.NewNoopLogger()
