package pastpaper

import "github.com/tsawler/pastpaper/segment"

// processOptions holds configuration for paper processing.
type processOptions struct {
	profile segment.SubjectProfile
}

// defaultProcessOptions returns the default processing options.
func defaultProcessOptions() processOptions {
	return processOptions{
		profile: segment.DefaultSubjectProfile(),
	}
}
