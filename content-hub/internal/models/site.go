package models

import "fmt"

// SiteID names one of the public sites content can be published to.
type SiteID string

const (
	SiteGroup         SiteID = "group"
	SiteConstruction  SiteID = "construction"
	SiteEntertainment SiteID = "entertainment"
	SiteRealty        SiteID = "mansaluxe-realty"

	// SiteAll selects every site in admin filters. It is never persisted.
	SiteAll SiteID = "all"
)

var allSites = []SiteID{SiteGroup, SiteConstruction, SiteEntertainment, SiteRealty}

// AllSites returns the concrete sites in a stable order. The slice is a copy.
func AllSites() []SiteID {
	return append([]SiteID(nil), allSites...)
}

// Valid reports whether s is a concrete site (SiteAll is not).
func (s SiteID) Valid() bool {
	for _, site := range allSites {
		if s == site {
			return true
		}
	}
	return false
}

// ParseSite accepts a concrete site id or "all".
func ParseSite(raw string) (SiteID, error) {
	s := SiteID(raw)
	if s == SiteAll || s.Valid() {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSite, raw)
}
