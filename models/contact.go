package models

// ContactMessage is an enquiry sent to a listing's owner through the
// contact-messages endpoint.
type ContactMessage struct {
	Property int    `json:"property"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Message  string `json:"message" validate:"required"`
}

// LocationDraft is the tuple the map picker reports while a listing is being
// composed; it merges into the property draft on submit.
type LocationDraft struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	Area      string  `json:"area,omitempty"`
	City      string  `json:"city,omitempty"`
}
