package entity

// NoteOperation is an action a caller wants to perform on an existing note.
// Creation is not an operation here: new notes are always stamped with the caller's id.
type NoteOperation string

const (
	// NoteOperationRead reads a single note.
	NoteOperationRead NoteOperation = "read"
	// NoteOperationUpdate replaces a note's title and content.
	NoteOperationUpdate NoteOperation = "update"
	// NoteOperationDelete removes a note.
	NoteOperationDelete NoteOperation = "delete"
)

// String returns the string representation of the NoteOperation.
func (op NoteOperation) String() string {
	return string(op)
}

// IsValid checks if the NoteOperation is a known value.
func (op NoteOperation) IsValid() bool {
	switch op {
	case NoteOperationRead, NoteOperationUpdate, NoteOperationDelete:
		return true
	default:
		return false
	}
}
