package models

import "time"

// SimpleAlbum is a simplified album, as embedded in tracks and search results.
type SimpleAlbum struct {
	AlbumType            AlbumType              `json:"album_type"`
	TotalTracks          int                    `json:"total_tracks"`
	AvailableMarkets     Optional[[]string]     `json:"available_markets,omitzero"`
	ExternalURLs         ExternalURLs           `json:"external_urls"`
	Href                 string                 `json:"href"`
	ID                   string                 `json:"id"`
	Images               []Image                `json:"images"`
	Name                 string                 `json:"name"`
	ReleaseDate          ReleaseDate            `json:"release_date"`
	ReleaseDatePrecision ReleaseDatePrecision   `json:"release_date_precision"`
	Restrictions         Optional[Restrictions] `json:"restrictions,omitzero"`
	URI                  string                 `json:"uri"`
	Artists              []SimpleArtist         `json:"artists"`
}

// ArtistAlbum is an album in an artist's discography listing.
type ArtistAlbum struct {
	SimpleAlbum
	AlbumGroup AlbumGroup `json:"album_group"`
}

// Album is a full album.
type Album struct {
	SimpleAlbum
	Tracks      Page[SimpleTrack] `json:"tracks"`
	Copyrights  []Copyright       `json:"copyrights"`
	ExternalIDs ExternalIDs       `json:"external_ids"`
	Genres      []string          `json:"genres"`
	Label       string            `json:"label"`
	Popularity  int               `json:"popularity"`
}

// SavedAlbum is an album saved to the user's library, with save metadata.
type SavedAlbum struct {
	AddedAt time.Time `json:"added_at"`
	Album   Album     `json:"album"`
}
