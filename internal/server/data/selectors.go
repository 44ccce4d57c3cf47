package data

import (
	"gorm.io/gorm"
)

type SelectorFunc func(db *gorm.DB) *gorm.DB

func ByID(id uint) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func ByEmail(email string) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", email)
	}
}

func ByUserID(userID uint) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

func ByDate(date string) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("date = ?", date)
	}
}

// ByDateRange selects rows with a date between start and end inclusive.
func ByDateRange(start, end string) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("date >= ? AND date <= ?", start, end)
	}
}

func ByResetToken(token string) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("reset_token = ?", token)
	}
}

func OrderBy(order string) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(order)
	}
}
