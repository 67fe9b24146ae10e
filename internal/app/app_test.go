package app

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/openmerch/catalogd/config"
	"github.com/openmerch/catalogd/internal/domain"
)

func newTestApp(t *testing.T) *Application {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	cfg := config.DefaultAppConfig
	application := NewApplication(&cfg)
	application.OverrideDB(db)
	require.NoError(t, application.MigrateDB(false))
	return application
}

func TestMigrateAndSeed(t *testing.T) {
	application := newTestApp(t)
	application.checkProducts()

	products, err := application.Products().All(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 4)

	// seeding is idempotent
	application.checkProducts()
	products, err = application.Products().All(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestInitDbResetsSchema(t *testing.T) {
	application := newTestApp(t)
	application.checkProducts()

	application.InitDb()
	products, err := application.Products().All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDropAll(t *testing.T) {
	application := newTestApp(t)
	application.DropAll()
	assert.False(t, application.DB().Migrator().HasTable(&domain.Product{}))
}
