package services

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"

	"finpace/internal/logger"
	"finpace/internal/models"
)

const redacted = "[redacted]"

// sensitiveAuditKeys never reach the audit table in clear text.
var sensitiveAuditKeys = map[string]bool{
	"password":      true,
	"refresh_token": true,
	"access_token":  true,
}

type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records a write performed by userID. Failures are logged and swallowed;
// an audit miss never fails the request that triggered it. Audit rows are not
// tied to the users table, so the entry for a deleted account survives.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	log := logger.Get().With(
		"user_id", userID,
		"action", action,
		"resource_type", resourceType,
		"resource_id", resourceID,
	)

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
	}

	if len(changes) > 0 {
		data, err := json.Marshal(redactChanges(changes))
		if err != nil {
			log.Errorw("failed to marshal audit changes", "error", err)
			data = []byte("{}")
		}
		entry.Changes = string(data)
	}

	if err := s.db.Create(entry).Error; err != nil {
		log.Errorw("failed to create audit log entry", "error", err)
	}
}

// redactChanges copies changes with sensitive values masked.
func redactChanges(changes map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(changes))
	for k, v := range changes {
		if sensitiveAuditKeys[strings.ToLower(k)] {
			out[k] = redacted
			continue
		}
		out[k] = v
	}
	return out
}
