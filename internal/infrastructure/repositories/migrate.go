package repositories

import "gorm.io/gorm"

// Migrate creates or updates the account, vehicle and booking tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&DBAccount{}, &DBVehicle{}, &DBBooking{})
}
