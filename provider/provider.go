// Package provider exposes the audio search backends a track can be
// sourced from. Each backend resolves its raw responses into tagged
// SearchResult records at this boundary, so downstream matching never
// inspects provider-specific shapes.
package provider

import (
	"github.com/ppartarr/melotube/entity"
)

type Type int

const (
	TypeOther Type = iota
	TypeSong
	TypeVideo
)

// SearchResult is a single candidate returned by a backend.
type SearchResult struct {
	Source     string   // backend identifier
	Type       Type     // drives which match signals apply
	URL        string   // opaque download target
	Title      string
	Artists    []string // unset for video results
	Channel    string   // uploader/channel name, when known
	Album      string   // set for song results only
	Duration   float64  // in seconds
	IsrcSearch bool     // result of an ISRC-scoped query
}

type Provider interface {
	Name() string
	Search(track *entity.Track) ([]SearchResult, error)
	SearchISRC(track *entity.Track) ([]SearchResult, error)
}

// registry order is meaningful: results are merged in this order and
// the ranker breaks score ties by first occurrence.
var providers = []Provider{
	ytMusic{},
	youTube{},
}

// Search merges the candidates of every registered backend,
// preserving backend and in-backend ordering.
func Search(track *entity.Track) ([]SearchResult, error) {
	var results []SearchResult
	for _, provider := range providers {
		partial, err := provider.Search(track)
		if err != nil {
			return nil, err
		}
		results = append(results, partial...)
	}
	return results, nil
}

// SearchISRC queries every backend supporting ISRC-scoped search.
// An empty result set is not an error.
func SearchISRC(track *entity.Track) ([]SearchResult, error) {
	if track.ISRC == "" {
		return nil, nil
	}

	var results []SearchResult
	for _, provider := range providers {
		partial, err := provider.SearchISRC(track)
		if err != nil {
			return nil, err
		}
		results = append(results, partial...)
	}
	return results, nil
}
