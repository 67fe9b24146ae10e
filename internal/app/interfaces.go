package app

import (
	"gorm.io/gorm"

	"github.com/openmerch/catalogd/config"
	"github.com/openmerch/catalogd/internal/store"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// ProductProvider provides product repository access
type ProductProvider interface {
	Products() store.ProductRepository
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	DBProvider
	ConfigProvider
	ProductProvider

	// Application lifecycle methods
	MigrateDB(track bool) error
	InitDb()
	DropAll()
}
