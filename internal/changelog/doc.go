// Package changelog turns commit subject lines into a dated markdown changelog section.
//
// This package implements:
//   - Prefix classification of commit summaries against a fixed category table
//   - Markdown rendering of the grouped summaries for a single day
//   - Merging the rendered section on top of an existing CHANGELOG.md
//   - Colored terminal preview of a section
//
// The category table is fixed at build time. Summaries whose prefix matches no
// known key are filed under the catch-all "Other" category.
package changelog
