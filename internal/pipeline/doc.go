// Package pipeline implements the Markdown normalization pipeline.
//
// This package handles the text transforms applied to raw converter output:
//   - heading extraction (level + display text, via goldmark's AST)
//   - anchor slug generation with per-document collision tracking
//   - TOC link rewriting from converter bookmarks to heading anchors
//   - ordered-list renumbering
//   - blank-line and end-of-file linting (MD012, MD022, MD032, MD047)
//
// Every transform is a pure text-to-text function: no I/O, no state shared
// across documents. Anything that can go wrong structurally degrades to
// "leave the text unchanged" plus a warning, so output is always valid
// Markdown. Front matter assembly and title resolution live in the root
// docx2md package, which orchestrates these stages.
package pipeline
