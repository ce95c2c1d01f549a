package models

import "strings"

// TitleType classifies a catalog entry by kind. The search result layouts and
// the structured metadata blocks spell the same kind differently ("TV Series"
// vs "TVSeries" vs "MusicVideoObject"), so parsing canonicalizes on a
// space-and-case-insensitive key.
type TitleType int

const (
	TitleTypeUnknown TitleType = iota
	TitleTypeMovie
	TitleTypeTVSeries
	TitleTypeTVMiniSeries
	TitleTypeTVMovie
	TitleTypeTVEpisode
	TitleTypeTVSpecial
	TitleTypeTVShort
	TitleTypePodcastSeries
	TitleTypePodcastEpisode
	TitleTypeVideoGame
	TitleTypeVideo
	TitleTypeShort
	TitleTypeMusicVideo
)

// String returns the display label of the title type.
func (t TitleType) String() string {
	switch t {
	case TitleTypeMovie:
		return "Movie"
	case TitleTypeTVSeries:
		return "TV Series"
	case TitleTypeTVMiniSeries:
		return "TV Mini Series"
	case TitleTypeTVMovie:
		return "TV Movie"
	case TitleTypeTVEpisode:
		return "TV Episode"
	case TitleTypeTVSpecial:
		return "TV Special"
	case TitleTypeTVShort:
		return "TV Short"
	case TitleTypePodcastSeries:
		return "Podcast Series"
	case TitleTypePodcastEpisode:
		return "Podcast Episode"
	case TitleTypeVideoGame:
		return "Video Game"
	case TitleTypeVideo:
		return "Video"
	case TitleTypeShort:
		return "Short"
	case TitleTypeMusicVideo:
		return "Music Video"
	default:
		return "unknown"
	}
}

// ParseTitleType converts a type label to the TitleType enum. Spacing and
// case are ignored, so "TV Series", "TVSeries" and "tv series" all parse to
// TitleTypeTVSeries. Unrecognized labels parse to TitleTypeUnknown.
func ParseTitleType(label string) TitleType {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(label), " ", ""))
	switch key {
	case "movie", "film":
		return TitleTypeMovie
	case "tvseries":
		return TitleTypeTVSeries
	case "tvminiseries", "tvmini-series", "miniseries":
		return TitleTypeTVMiniSeries
	case "tvmovie":
		return TitleTypeTVMovie
	case "tvepisode":
		return TitleTypeTVEpisode
	case "tvspecial":
		return TitleTypeTVSpecial
	case "tvshort":
		return TitleTypeTVShort
	case "podcastseries":
		return TitleTypePodcastSeries
	case "podcastepisode":
		return TitleTypePodcastEpisode
	case "videogame":
		return TitleTypeVideoGame
	case "video":
		return TitleTypeVideo
	case "short":
		return TitleTypeShort
	case "musicvideo", "musicvideoobject":
		return TitleTypeMusicVideo
	default:
		return TitleTypeUnknown
	}
}

// Rejected reports whether entries of this type can never denote a feature
// film from the seed catalog. An unknown type is not rejected; validation
// stays permissive when the kind cannot be determined.
func (t TitleType) Rejected() bool {
	switch t {
	case TitleTypePodcastSeries, TitleTypePodcastEpisode,
		TitleTypeTVSeries, TitleTypeTVEpisode,
		TitleTypeVideoGame, TitleTypeMusicVideo:
		return true
	default:
		return false
	}
}

// MarshalJSON implements json.Marshaler interface
func (t TitleType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler interface
func (t *TitleType) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	*t = ParseTitleType(str)
	return nil
}
