// Package schema defines the document model of the sustainability-data
// interchange format and the operations that work purely on it.
//
// A document is a Meta header plus role-specific data. Three roles exist:
//   - cataloger: lists producers and products it catalogs
//   - producer: describes itself, its products and the reviewers it recognizes
//   - reviewer: publishes reviews of producers and products
//
// Struct fields are declared in wire order (alphabetical), so every encoding
// emits keys in the same order. Optional scalars and optional lists are
// pointers; a nil *[]string means "no list" and a pointer to an empty slice
// means "empty list".
//
// # Unions
//
// Entries are tagged by a "type" field and an unknown tag is a decode error.
// Review, AboutReview and Regions are untagged: candidate shapes are tried in
// declared order and the first shape whose required fields the value carries
// wins. Other keys are ignored, except that a Certification keeps them. An
// object with both title and url is a Mention, never a Certification.
//
//	Review:      ScoreReview, Certification, Mention
//	AboutReview: AboutScoreReview, AboutCertification
//	Regions:     RegionVariant, RegionList
//
// # Merge and Sort
//
// Merge and TryMerge combine two records describing the same entity into a
// new record without touching the inputs. Sort orders every collection whose
// order carries no meaning, so encoding is byte-stable for equal content.
package schema
