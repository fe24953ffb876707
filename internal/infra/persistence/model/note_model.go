package model

import "time"

// NoteModel mirrors the 'notes' table. OwnerID references users.id.
type NoteModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(255);not null"`
	Content   string `gorm:"type:text;not null"`
	OwnerID   int64  `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "notes"
}
