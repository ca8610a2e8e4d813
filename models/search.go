package models

// SearchResult holds one page per catalog type requested in a search. Only
// the requested types are set.
type SearchResult struct {
	Tracks    Optional[Page[Track]]          `json:"tracks,omitzero"`
	Artists   Optional[Page[Artist]]         `json:"artists,omitzero"`
	Albums    Optional[Page[SimpleAlbum]]    `json:"albums,omitzero"`
	Playlists Optional[Page[SimplePlaylist]] `json:"playlists,omitzero"`
	Episodes  Optional[Page[Episode]]        `json:"episodes,omitzero"`
}
