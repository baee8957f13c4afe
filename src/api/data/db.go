package data

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// MustDB opens the configured database or exits. MySQL is the
// production target; sqlite covers local development and tests.
func MustDB(driver, dsn string) *gorm.DB {
	var dial gorm.Dialector
	switch driver {
	case "mysql":
		dial = mysql.Open(dsn)
	case "sqlite":
		dial = sqlite.Open(dsn)
	default:
		log.Fatalf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		log.Fatalf("%s: %v", driver, err)
	}
	return db
}
