// Package pagetext extracts the main content of an HTML page and reflows
// it into a fixed-width, link-annotated plain-text document. A recursive
// tree-density heuristic decides which subtrees of the page are content
// and which are clutter; the surviving text is rewrapped with paragraph
// boundaries and bracketed hyperlink references restored.
//
// This package contains domain types, interfaces, and the core algorithms.
// Implementations of the collaborator interfaces live in subdirectories
// named after their primary dependency (e.g., html/, goquery/, http/, fs/).
package pagetext
