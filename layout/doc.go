// Package layout provides position-aware text structure for exam
// pages: grouping positioned words into lines, and scrubbing
// boilerplate lines (page numbers, print codes, "turn over") from
// question paper text before pattern matching.
package layout
