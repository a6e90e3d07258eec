// Package segment implements exam paper segmentation: establishing the
// authoritative question-number set for a paper, locating each
// question's pages in the question paper and mark scheme, extracting
// mark totals, and cross-checking the assembled result.
//
// Every signal in scanned exam documents is individually unreliable
// (left-margin position, totals markers, table column position), so
// each stage cross-checks against the authoritative set and recovers
// from missing anchors rather than trusting any single pattern.
package segment
