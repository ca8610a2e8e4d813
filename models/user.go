package models

// SimpleUser is a simplified user reference, as embedded in playlist items.
type SimpleUser struct {
	ExternalURLs ExternalURLs        `json:"external_urls"`
	Followers    Optional[Followers] `json:"followers,omitzero"`
	Href         string              `json:"href"`
	ID           string              `json:"id"`
	URI          string              `json:"uri"`
}

// User is a public user profile.
type User struct {
	SimpleUser
	DisplayName *string `json:"display_name"`
}

// ExplicitContent is a user's explicit content settings.
type ExplicitContent struct {
	FilterEnabled bool `json:"filter_enabled"`
	FilterLocked  bool `json:"filter_locked"`
}

// OwnUser is the current user's profile. Country, Email, ExplicitContent and
// Product require the user-read-private / user-read-email scopes and are unset
// without them.
type OwnUser struct {
	User
	Country         Optional[string]          `json:"country,omitzero"`
	Email           Optional[string]          `json:"email,omitzero"`
	ExplicitContent Optional[ExplicitContent] `json:"explicit_content,omitzero"`
	Images          []Image                   `json:"images"`
	Product         Optional[string]          `json:"product,omitzero"`
}
