package models

import (
	"encoding/json"
	"strings"
	"time"
)

// UserProfile is the signed-in user as reported by the server. It is held in
// memory only and refetched every session.
type UserProfile struct {
	ID        int64     `json:"id,omitempty"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt Timestamp `json:"createdAt"`
}

// DisplayName falls back to the email when no full name is known.
func (u *UserProfile) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// Timestamp keeps the server's textual date alongside its parsed value.
// Servers commonly send local date-times without a zone
// ("2024-05-01T10:20:30.123456"); those are read as UTC. Anything
// unparseable is kept in Raw with a zero Time rather than failing the decode.
type Timestamp struct {
	Raw  string
	Time time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp reads s with the first matching layout.
func ParseTimestamp(s string) Timestamp {
	ts := Timestamp{Raw: s}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t
			break
		}
	}
	return ts
}

func (t Timestamp) IsZero() bool {
	return t.Raw == "" && t.Time.IsZero()
}

func (t Timestamp) String() string {
	if !t.Time.IsZero() {
		return t.Time.Format("2006-01-02 15:04")
	}
	return t.Raw
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		raw := strings.TrimSpace(string(b))
		if raw == "null" {
			raw = ""
		}
		*t = Timestamp{Raw: raw}
		return nil
	}
	*t = ParseTimestamp(s)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(t.Raw)
}
