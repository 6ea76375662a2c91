package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// isUniqueConstraintViolation recognises duplicate-key failures whether or not
// the gorm dialector translated the driver error.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, pgUniqueViolation) ||
		strings.Contains(errMsg, "duplicate key value violates unique constraint")
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// primary pins a read to the writer. Uniqueness and ownership checks use it so
// they see rows the caller just wrote, even when reads go to replicas.
func primary(db *gorm.DB) *gorm.DB {
	return db.Clauses(dbresolver.Write)
}
