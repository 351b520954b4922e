package domain

// EmergencyContact is a quick-dial entry maintained by administrators.
// IsLive marks numbers that are monitored around the clock.
type EmergencyContact struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	PhoneNumber string `json:"phone_number" db:"phone_number"`
	IsActive    bool   `json:"is_active" db:"is_active"`
	IsLive      bool   `json:"is_live" db:"is_live"`
	SortOrder   int    `json:"sort_order" db:"sort_order"`
}

// SafetyTip is one bullet on the safety tips screen.
type SafetyTip struct {
	ID        int64  `json:"id" db:"id"`
	Tip       string `json:"tip" db:"tip"`
	SortOrder int    `json:"sort_order" db:"sort_order"`
}
