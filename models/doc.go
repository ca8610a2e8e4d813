// Package models defines the typed records decoded from Spotify Web API responses.
//
// The package contains three categories of types:
//
// 1. Resource records: Structs mirroring remote JSON shapes
//   - [Album], [Artist], [Track], [Playlist], [Episode] and their simplified variants
//   - [Player], [Device], [Queue] for playback state
//   - [User], [OwnUser], [SearchResult]
//
// 2. Pagination shapes: [Page] and [CursorPage], generic over their item type
//
// 3. Field plumbing: [Optional] for tri-state request/response fields, enumerated
// string types ([AlbumType], [RepeatState], ...), and [ReleaseDate] for the remote
// API's variable-precision dates.
//
// Records are constructed exclusively by decoding response bodies and are never
// mutated afterwards. Unknown JSON fields are ignored; unknown enum literals are
// rejected at decode time, except [PlayingType] and [RestrictionReason] which
// normalize to their Unknown member because the remote service adds values to
// those fields without notice.
package models
