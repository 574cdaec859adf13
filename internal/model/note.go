package model

import "time"

// Note is a stored note. Only the columns needed to build read models are mapped.
type Note struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	TagText      string    `json:"tag_text"`
	MainImageURL string    `json:"main_image_url"`
	Content      string    `json:"content"`
	Archived     bool      `json:"archived"`
	CreatedAt    time.Time `json:"created_at"`
}

// Question is a stored question.
type Question struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccessEvent records that a note was opened. NoteTitle is copied from the note
// when the event is written.
type AccessEvent struct {
	ID         int64     `json:"id"`
	NoteID     int64     `json:"note_id"`
	NoteTitle  string    `json:"note_title"`
	AccessedAt time.Time `json:"accessed_at"`
}
