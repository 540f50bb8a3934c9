package migration

import (
	"github.com/osidou/osidou-web/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for the tables owned by the web tier.
// Everything else lives behind the REST backend.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Session{})
}
