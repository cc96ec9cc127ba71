package models

// UserInfo is the identity captured once at session start, after the
// phone number passed remote validation. Immutable for the lifetime of
// the session.
type UserInfo struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	EventName      string  `json:"event_name"`
	EventDate      string  `json:"event_date"`
	ProfilePicture *string `json:"profile_picture"`
	Admin          bool    `json:"admin"`
}
