// Package model defines the data structures for exam paper
// segmentation: pages and words as delivered by page extraction, the
// authoritative question-number set, per-question page spans and marks
// computations, and the per-paper validation report.
package model
