package audit

import (
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"github.com/Dalopezos28/salon-bienestar/internal/models"
)

type Logger struct {
	db *gorm.DB
}

// New returns a Logger. db may be nil (spreadsheet storage driver); entries
// then go to the process log instead of the audit table.
func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	if l.db == nil {
		log.Printf("audit: %s %s %s %s", action, entity, entityID, metaJSON)
		return nil
	}

	entry := models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}
