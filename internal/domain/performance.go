package domain

import "time"

// Program part labels used as prefixes in Performance.Pieces entries,
// e.g. "1부: 차이코프스키 바이올린 협주곡".
const (
	ProgramPartFirst  = "1부"
	ProgramPartSecond = "2부"
	ProgramPartEncore = "앵콜"
)

type Performance struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Date         string     `json:"date"` // ISO date, YYYY-MM-DD
	Venue        string     `json:"venue"`
	Pieces       []string   `json:"pieces"`
	Instrument   string     `json:"instrument"`
	SubPart      string     `json:"sub_part"`
	IsGuest      bool       `json:"is_guest"`
	GuestFee     *int       `json:"guest_fee,omitempty"`
	Conductor    string     `json:"conductor"`
	EnsembleName string     `json:"ensemble_name"`
	IsPublic     bool       `json:"is_public"`
	YoutubeURL   string     `json:"youtube_url,omitempty"`
	PosterURL    string     `json:"poster_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// FormatProgramPiece renders a program entry with its part label prefix.
func FormatProgramPiece(part, title string) string {
	return part + ": " + title
}
