package entity

import "time"

// Note is a piece of text owned by exactly one user.
// OwnerID is fixed at creation and always taken from the authenticated caller.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteFields carries the mutable fields of a note for an update.
type NoteFields struct {
	Title   string
	Content string
}

// OwnedBy reports whether the note belongs to the given user.
func (n *Note) OwnedBy(userID int64) bool {
	return n != nil && n.OwnerID == userID
}
