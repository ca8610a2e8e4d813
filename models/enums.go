package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AlbumType is the type of an album.
type AlbumType string

const (
	AlbumTypeAlbum       AlbumType = "album"
	AlbumTypeSingle      AlbumType = "single"
	AlbumTypeCompilation AlbumType = "compilation"
	AlbumTypeEP          AlbumType = "ep"
)

// UnmarshalJSON lowercases the literal before matching; the remote API
// occasionally returns album types in upper case.
func (t *AlbumType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch v := AlbumType(strings.ToLower(s)); v {
	case AlbumTypeAlbum, AlbumTypeSingle, AlbumTypeCompilation, AlbumTypeEP:
		*t = v
		return nil
	}
	return fmt.Errorf("unknown album type %q", s)
}

// AlbumGroup represents the relationship between an artist and an album.
type AlbumGroup string

const (
	AlbumGroupAlbum       AlbumGroup = "album"
	AlbumGroupSingle      AlbumGroup = "single"
	AlbumGroupCompilation AlbumGroup = "compilation"
	AlbumGroupAppearsOn   AlbumGroup = "appears_on"
)

func (g *AlbumGroup) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch v := AlbumGroup(s); v {
	case AlbumGroupAlbum, AlbumGroupSingle, AlbumGroupCompilation, AlbumGroupAppearsOn:
		*g = v
		return nil
	}
	return fmt.Errorf("unknown album group %q", s)
}

// ReleaseDatePrecision is the precision with which a release date is known.
type ReleaseDatePrecision string

const (
	PrecisionYear  ReleaseDatePrecision = "year"
	PrecisionMonth ReleaseDatePrecision = "month"
	PrecisionDay   ReleaseDatePrecision = "day"
)

func (p *ReleaseDatePrecision) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch v := ReleaseDatePrecision(s); v {
	case PrecisionYear, PrecisionMonth, PrecisionDay:
		*p = v
		return nil
	}
	return fmt.Errorf("unknown release date precision %q", s)
}

// RepeatState is the repeat mode of a playback state.
type RepeatState string

const (
	RepeatOff     RepeatState = "off"
	RepeatTrack   RepeatState = "track"
	RepeatContext RepeatState = "context"
)

func (r *RepeatState) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch v := RepeatState(s); v {
	case RepeatOff, RepeatTrack, RepeatContext:
		*r = v
		return nil
	}
	return fmt.Errorf("unknown repeat state %q", s)
}

// ContextType is the kind of entity a playback context references.
type ContextType string

const (
	ContextArtist   ContextType = "artist"
	ContextPlaylist ContextType = "playlist"
	ContextAlbum    ContextType = "album"
	ContextShow     ContextType = "show"
)

func (c *ContextType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch v := ContextType(s); v {
	case ContextArtist, ContextPlaylist, ContextAlbum, ContextShow:
		*c = v
		return nil
	}
	return fmt.Errorf("unknown context type %q", s)
}

// PlayingType is the type of a currently playing item. Unrecognized literals
// decode as [PlayingUnknown]; the remote service introduces new values here
// without notice.
type PlayingType string

const (
	PlayingTrack   PlayingType = "track"
	PlayingEpisode PlayingType = "episode"
	PlayingAd      PlayingType = "ad"
	PlayingUnknown PlayingType = "unknown"
)

func (p *PlayingType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch v := PlayingType(s); v {
	case PlayingTrack, PlayingEpisode, PlayingAd:
		*p = v
	default:
		*p = PlayingUnknown
	}
	return nil
}

// RestrictionReason is the reason content is restricted. Unrecognized literals
// decode as [ReasonUnknown].
type RestrictionReason string

const (
	ReasonMarket          RestrictionReason = "market"
	ReasonProduct         RestrictionReason = "product"
	ReasonExplicit        RestrictionReason = "explicit"
	ReasonPaymentRequired RestrictionReason = "payment_required"
	ReasonUnknown         RestrictionReason = "unknown"
)

func (r *RestrictionReason) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch v := RestrictionReason(s); v {
	case ReasonMarket, ReasonProduct, ReasonExplicit, ReasonPaymentRequired:
		*r = v
	default:
		*r = ReasonUnknown
	}
	return nil
}

// SearchType selects which catalog types a search covers.
type SearchType string

const (
	SearchAlbum    SearchType = "album"
	SearchArtist   SearchType = "artist"
	SearchPlaylist SearchType = "playlist"
	SearchTrack    SearchType = "track"
	SearchShow     SearchType = "show"
	SearchEpisode  SearchType = "episode"
)

// SeedType is the entity type of a recommendation seed.
type SeedType string

const (
	SeedArtist SeedType = "artist"
	SeedTrack  SeedType = "track"
	SeedGenre  SeedType = "genre"
)

func (s *SeedType) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := SeedType(strings.ToLower(v)); t {
	case SeedArtist, SeedTrack, SeedGenre:
		*s = t
		return nil
	}
	return fmt.Errorf("unknown seed type %q", v)
}

// Scope is a named OAuth permission unit gating access to specific endpoints.
type Scope string

const (
	ScopeUGCImageUpload           Scope = "ugc-image-upload"
	ScopeUserReadPlaybackState    Scope = "user-read-playback-state"
	ScopeUserModifyPlaybackState  Scope = "user-modify-playback-state"
	ScopeUserReadCurrentlyPlaying Scope = "user-read-currently-playing"
	ScopeAppRemoteControl         Scope = "app-remote-control"
	ScopeStreaming                Scope = "streaming"
	ScopePlaylistReadPrivate      Scope = "playlist-read-private"
	ScopePlaylistReadCollab       Scope = "playlist-read-collaborative"
	ScopePlaylistModifyPrivate    Scope = "playlist-modify-private"
	ScopePlaylistModifyPublic     Scope = "playlist-modify-public"
	ScopeUserFollowModify         Scope = "user-follow-modify"
	ScopeUserFollowRead           Scope = "user-follow-read"
	ScopeUserReadPlaybackPosition Scope = "user-read-playback-position"
	ScopeUserTopRead              Scope = "user-top-read"
	ScopeUserReadRecentlyPlayed   Scope = "user-read-recently-played"
	ScopeUserLibraryModify        Scope = "user-library-modify"
	ScopeUserLibraryRead          Scope = "user-library-read"
	ScopeUserReadEmail            Scope = "user-read-email"
	ScopeUserReadPrivate          Scope = "user-read-private"
)

// JoinScopes renders scopes as the space-separated form the authorization and
// token endpoints use.
func JoinScopes(scopes []Scope) string {
	parts := make([]string, len(scopes))
	for i, s := range scopes {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}

// SplitScopes parses the space-separated scope field of a token response. An
// empty field yields no scopes.
func SplitScopes(s string) []Scope {
	if s == "" {
		return nil
	}
	fields := strings.Fields(s)
	scopes := make([]Scope, len(fields))
	for i, f := range fields {
		scopes[i] = Scope(f)
	}
	return scopes
}
