package segment

import "github.com/tsawler/pastpaper/layout"

// SubjectProfile parameterizes the segmentation engine for one exam
// subject. Acceptance-band parameters, boilerplate patterns, and the
// mark-code blacklist vary across subjects and template generations;
// they are data on this struct, not separate code paths.
type SubjectProfile struct {
	// BandK scales the median-absolute-deviation when deriving the
	// margin acceptance band. Chosen generously to tolerate template
	// drift across years (default: 5)
	BandK float64

	// BandMinHalfWidth is the minimum acceptance-band half-width, so a
	// single clean calibration sample still yields a usable band
	// (default: 0.02)
	BandMinHalfWidth float64

	// QPFallbackBand is the generic band used when no calibration
	// samples exist at all (default: [0, 0.25])
	QPFallbackBand Band

	// RecoveryLookback is how many pages to search backward from a
	// question's end page when its start was never detected
	// (default: 3)
	RecoveryLookback int

	// MSHeaderSampleWindow is how many pages after the mark scheme
	// header page to sample when deriving the question column band
	// (default: 4)
	MSHeaderSampleWindow int

	// MSFallbackHeaderPage is the header page index assumed when no
	// table header is found (default: 0)
	MSFallbackHeaderPage int

	// MSFallbackColumnBand is the column band assumed when sampling
	// yields nothing (default: [0, 0.2])
	MSFallbackColumnBand Band

	// BoilerplatePatterns are the scrubber's line patterns
	BoilerplatePatterns []string

	// MarkCodeBlacklist lists lowercase tokens whose presence marks a
	// mark scheme line as annotation noise rather than a mark value
	MarkCodeBlacklist []string

	// LineConfig is the word-to-line grouping configuration
	LineConfig layout.LineConfig
}

// DefaultMarkCodeBlacklist returns the annotation tokens that look
// numeric in context but do not carry marks: method/accuracy/
// independent-mark qualifiers and error-carried-forward style codes.
func DefaultMarkCodeBlacklist() []string {
	return []string{
		"method",
		"accuracy",
		"independent",
		"ecf",
		"ft",
		"cao",
		"oe",
		"awrt",
		"isw",
		"cso",
		"dep",
	}
}

// DefaultSubjectProfile returns the profile used when no
// subject-specific overrides are needed.
func DefaultSubjectProfile() SubjectProfile {
	return SubjectProfile{
		BandK:                5.0,
		BandMinHalfWidth:     0.02,
		QPFallbackBand:       Band{Lo: 0.0, Hi: 0.25},
		RecoveryLookback:     3,
		MSHeaderSampleWindow: 4,
		MSFallbackHeaderPage: 0,
		MSFallbackColumnBand: Band{Lo: 0.0, Hi: 0.2},
		BoilerplatePatterns:  layout.DefaultBoilerplatePatterns(),
		MarkCodeBlacklist:    DefaultMarkCodeBlacklist(),
		LineConfig:           layout.DefaultLineConfig(),
	}
}
