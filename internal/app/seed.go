package app

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/openmerch/catalogd/internal/domain"
)

// checkProducts initializes default catalog products
func (a *Application) checkProducts() {
	defaultProducts := []domain.Product{
		{Name: "Fedora", Description: "A red hat", Price: decimal.New(1250, -2), Available: true, Category: domain.CategoryCloths},
		{Name: "Sledge Hammer", Description: "16oz forged head", Price: decimal.New(3495, -2), Available: true, Category: domain.CategoryTools},
		{Name: "Wiper Blades", Description: "22 inch all-season pair", Price: decimal.New(1899, -2), Available: false, Category: domain.CategoryAutomotive},
		{Name: "Dinner Plates", Description: "Set of 6, stoneware", Price: decimal.New(2400, -2), Available: true, Category: domain.CategoryHousewares},
	}

	for _, p := range defaultProducts {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("name = ?", p.Name).Count(&count)
		if count == 0 {
			product := p
			if err := a.gormDB.Create(&product).Error; err != nil {
				zap.L().Error("failed to create default product", zap.String("name", p.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized default product", zap.String("name", p.Name))
			}
		}
	}
}
