package diff

// Options holds the tunables of a comparison.
type Options struct {
	// PrefilterThreshold is the fingerprint similarity a target must exceed to be scored.
	PrefilterThreshold float64 `mapstructure:"prefilter_threshold" default:"0.2"`
	// MatchThreshold is the minimum row similarity for two rows to be paired.
	MatchThreshold float64 `mapstructure:"match_threshold" default:"0.3"`
	// MaxCandidates caps how many prefiltered targets are fully scored. Zero disables the cap.
	MaxCandidates int `mapstructure:"max_candidates" default:"50"`
	// PreviewRows is how many rows a table preview shows.
	PreviewRows int `mapstructure:"preview_rows" default:"10"`
}

const (
	DefaultPrefilterThreshold = 0.2
	DefaultMatchThreshold     = 0.30
	DefaultMaxCandidates      = 50
	DefaultPreviewRows        = 10
)

// DefaultOptions returns the stock thresholds.
func DefaultOptions() Options {
	return Options{
		PrefilterThreshold: DefaultPrefilterThreshold,
		MatchThreshold:     DefaultMatchThreshold,
		MaxCandidates:      DefaultMaxCandidates,
		PreviewRows:        DefaultPreviewRows,
	}
}
