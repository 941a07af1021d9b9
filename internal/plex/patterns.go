package plex

import (
	"regexp"
	"strconv"
	"sync"
)

// EpisodeNumbers is the result of reading a season and episode number out
// of a file name.
type EpisodeNumbers struct {
	Season  uint8
	Episode uint8
	// Remainder is everything after the second number, typically the
	// extension including its dot.
	Remainder string
}

// Patterns holds the compiled expressions used to classify paths and names.
// Build it once with NewPatterns and share it; it is never modified.
type Patterns struct {
	season    *regexp.Regexp
	canonical *regexp.Regexp
	numbers   *regexp.Regexp
}

// NewPatterns compiles the season, canonical-name and number patterns.
func NewPatterns() *Patterns {
	return &Patterns{
		// "Season 1", "SEASON", "my_season_folder" and also "seasoning":
		// a plain substring match, not a word match.
		season: regexp.MustCompile(`(?i)season`),
		// S01E02, s1e2, S1E02
		canonical: regexp.MustCompile(`(?i)s\d{1,2}e\d{1,2}`),
		// first number, next number, rest of the name including any
		// newlines
		numbers: regexp.MustCompile(`(?s)(\d+)\D*(\d+)(.*)`),
	}
}

var defaultPatterns = sync.OnceValue(NewPatterns)

// DefaultPatterns returns a process-wide Patterns built on first use.
func DefaultPatterns() *Patterns {
	return defaultPatterns()
}

// IsSeasonPath reports whether s contains "season" in any case.
func (p *Patterns) IsSeasonPath(s string) bool {
	return p.season.MatchString(s)
}

// IsCanonicalEpisodeName reports whether s already contains an S##E##
// marker anywhere.
func (p *Patterns) IsCanonicalEpisodeName(s string) bool {
	return p.canonical.MatchString(s)
}

// ExtractNumbers reads the first two numbers from name. It reports false
// when name holds fewer than two numbers or when either does not fit in a
// byte.
func (p *Patterns) ExtractNumbers(name string) (EpisodeNumbers, bool) {
	m := p.numbers.FindStringSubmatch(name)
	if m == nil {
		return EpisodeNumbers{}, false
	}

	season, err := strconv.ParseUint(m[1], 10, 8)
	if err != nil {
		return EpisodeNumbers{}, false
	}
	episode, err := strconv.ParseUint(m[2], 10, 8)
	if err != nil {
		return EpisodeNumbers{}, false
	}

	return EpisodeNumbers{
		Season:    uint8(season),
		Episode:   uint8(episode),
		Remainder: m[3],
	}, true
}
