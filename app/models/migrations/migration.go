package migrations

import (
	"github.com/Rakhulsr/contoso-pizza/app/models"
	"gorm.io/gorm"
)

// Models lists the persisted entities in dependency order.
func Models() []interface{} {
	return []interface{}{&models.Customer{}, &models.Product{}, &models.Order{}, &models.OrderDetail{}}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
