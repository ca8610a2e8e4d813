package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Image represents an image resource.
type Image struct {
	URL    string `json:"url"`
	Height *int   `json:"height"`
	Width  *int   `json:"width"`
}

// Followers holds follower information for an artist, playlist or user.
type Followers struct {
	Href  *string `json:"href"`
	Total int     `json:"total"`
}

// ExternalURLs holds known external URLs for a resource.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// ExternalIDs holds known external identifiers for a resource.
type ExternalIDs struct {
	ISRC Optional[string] `json:"isrc,omitzero"`
	EAN  Optional[string] `json:"ean,omitzero"`
	UPC  Optional[string] `json:"upc,omitzero"`
}

// Copyright is a copyright statement.
type Copyright struct {
	Text string `json:"text"`
	Type string `json:"type"` // "C" or "P"
}

// Restrictions describes a content restriction applied to a resource.
type Restrictions struct {
	Reason RestrictionReason `json:"reason"`
}

// ReleaseDate is a date of variable precision. The remote API reports release
// dates as "2006", "2006-01" or "2006-01-02" depending on what it knows, and
// "0000" when it knows nothing; unspecified components default to 1 and "0000"
// decodes as the zero value.
type ReleaseDate struct {
	time.Time
}

func (d *ReleaseDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" || s == "0000" {
		*d = ReleaseDate{}
		return nil
	}

	year, month, day := 0, 1, 1
	parts := strings.SplitN(s, "-", 3)
	var err error
	if year, err = strconv.Atoi(parts[0]); err != nil {
		return fmt.Errorf("invalid release date %q", s)
	}
	if len(parts) > 1 {
		if month, err = strconv.Atoi(parts[1]); err != nil {
			return fmt.Errorf("invalid release date %q", s)
		}
	}
	if len(parts) > 2 {
		if day, err = strconv.Atoi(parts[2]); err != nil {
			return fmt.Errorf("invalid release date %q", s)
		}
	}

	d.Time = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return nil
}

func (d ReleaseDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("0000")
	}
	return json.Marshal(d.Format("2006-01-02"))
}
