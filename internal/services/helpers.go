package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finpace/internal/errors"
	"finpace/internal/models"
)

// isUniqueViolation reports whether err came from a unique index. Drivers
// opened with TranslateError return gorm.ErrDuplicatedKey; the message checks
// cover connections opened without it.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

// isForeignKeyViolation reports whether err came from a foreign key, either
// translated to gorm.ErrForeignKeyViolated or as the raw driver message.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "SQLSTATE 23503")
}

// lockUserCategories takes row locks on every category of userID until tx
// ends. SQLite has no row locks; its single writer connection already
// serialises the transaction.
func lockUserCategories(tx *gorm.DB, userID string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	var ids []string
	return tx.Model(&models.Category{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Pluck("id", &ids).Error
}

// findOwned loads the row with id owned by userID into dest, mapping a miss
// to notFound.
func findOwned(db *gorm.DB, dest interface{}, userID, id string, notFound *apperrors.AppError) error {
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
