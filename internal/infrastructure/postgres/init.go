package postgres

import (
	"log"

	"github.com/AiBusiness-KZ/PizzaMat/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MustInitDB opens the database or dies. TranslateError is on so unique
// violations surface as gorm.ErrDuplicatedKey: the order-code retry loop and
// the receipt dedup guard both key off that.
func MustInitDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DB.Dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	return db
}
