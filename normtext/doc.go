// Package normtext repairs common OCR artifacts in extracted page
// text: glyph variants are folded to one canonical form, the
// highest-value anchor phrases are repaired against single-character
// corruption, line-wrapped hyphenation is undone, and whitespace is
// collapsed. Normalization is deterministic and pure; newlines are
// structurally significant for later line-based matching and are
// preserved, except that fully blank lines are removed.
package normtext
