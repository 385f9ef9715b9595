package models

// SubmitCheckinRequest carries the check-in form fields. Rating arrives as a
// string so the handler can reject anything that does not parse as an
// integer; range is left to the form's own constraints.
type SubmitCheckinRequest struct {
	Rating string `form:"rating" json:"rating"`
	Note   string `form:"note" json:"note"`
}
