package dto

import (
	"encoding/json"
	"time"
)

// ContentAccessRecord describes one access to a note.
// NoteTitle is the title as it was when the access happened.
//
// Equal is the equality contract. Records built with NewContentAccessRecord or
// decoded from JSON carry a UTC timestamp without a monotonic reading and also
// compare equal with ==; a literal built from time.Now() does not.
type ContentAccessRecord struct {
	// Identifier of the accessed note
	NoteID int64 `json:"noteId" format:"int64" doc:"Identifier of the accessed note" example:"42"`
	// Title of the note at access time
	NoteTitle string `json:"noteTitle" doc:"Title of the note at access time" example:"My First Project"`
	// Moment of access, UTC
	AccessedAt time.Time `json:"accessedAt" format:"date-time" doc:"Moment of access, UTC" example:"2024-05-01T09:30:00Z"`
}

// NewContentAccessRecord builds a record with accessedAt normalised to UTC and
// stripped of its monotonic clock reading, so equal instants compare equal.
func NewContentAccessRecord(noteID int64, noteTitle string, accessedAt time.Time) ContentAccessRecord {
	return ContentAccessRecord{
		NoteID:     noteID,
		NoteTitle:  noteTitle,
		AccessedAt: accessedAt.Round(0).UTC(),
	}
}

// Equal reports whether both records describe the same note, title and instant.
func (r ContentAccessRecord) Equal(o ContentAccessRecord) bool {
	return r.NoteID == o.NoteID &&
		r.NoteTitle == o.NoteTitle &&
		r.AccessedAt.Equal(o.AccessedAt)
}

// UnmarshalJSON decodes a record and normalises accessedAt to UTC.
func (r *ContentAccessRecord) UnmarshalJSON(data []byte) error {
	type plain ContentAccessRecord
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = NewContentAccessRecord(p.NoteID, p.NoteTitle, p.AccessedAt)
	return nil
}
