package db

import (
	"gorm.io/gorm"
)

// NotDeleted filters out soft-deleted rows. Models carry a plain nullable
// deleted_at column rather than gorm.DeletedAt, so every query that must
// ignore deleted rows applies this scope explicitly.
//
//	db.Model(&models.SubscriptionModel{}).Scopes(db.NotDeleted()).Where("user_id = ?", id).Count(&n)
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// NotDeletedWithAlias is NotDeleted for joined queries.
func NotDeletedWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias + ".deleted_at IS NULL")
	}
}

// ForUpdate adds a row-level write lock (SELECT ... FOR UPDATE) on dialects
// that support it. Callers must be inside RunInTransaction.
func ForUpdate() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Clauses(lockingClause())
	}
}
