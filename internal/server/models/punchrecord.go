package models

// PunchRecord is one day of attendance for one user: the entry creates the
// row, the exit updates it in place. The composite unique index enforces at
// most one row per (user, date) even under concurrent entry requests.
type PunchRecord struct {
	Model

	UserID    uint    `gorm:"uniqueIndex:idx_punches_user_id_date;not null"`
	Date      string  `gorm:"uniqueIndex:idx_punches_user_id_date;not null"` // YYYY-MM-DD
	EntryTime string  // HH:MM:SS
	ExitTime  *string

	// JustificationURL is the public URL of an uploaded justification file.
	JustificationURL *string
}
