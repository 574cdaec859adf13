package dto

// ArchivedSummary is the list entry returned for an archived note.
type ArchivedSummary struct {
	// Note identifier
	ID int64 `json:"id" format:"int64" doc:"Note identifier" example:"1"`
	// Tag attached to the note
	TagText string `json:"tagText" doc:"Tag attached to the note" example:"design"`
	// Note title
	Title string `json:"title" doc:"Note title" example:"My First Project"`
	// URL of the note's main image
	MainImageURL string `json:"mainImageUrl" format:"uri" doc:"URL of the note's main image" example:"https://cdn/img.jpg"`
	// Short excerpt of the note content
	Teaser string `json:"teaser" doc:"Short excerpt of the note content" example:"A short note..."`
}
