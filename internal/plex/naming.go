package plex

import (
	"fmt"
	"path/filepath"
)

// FormatEpisodeName returns "S##E##" followed by the remainder. Numbers are
// zero padded to two digits and never truncated, so season 100 renders as
// "S100".
func FormatEpisodeName(n EpisodeNumbers) string {
	return fmt.Sprintf("S%02dE%02d%s", n.Season, n.Episode, n.Remainder)
}

// ProposePath returns the canonical path for an entry of dir.
func ProposePath(dir string, n EpisodeNumbers) string {
	return filepath.Join(dir, FormatEpisodeName(n))
}
