// Package substrate reads and writes sustainability-data documents.
//
// A document file is encoded in one of three formats, chosen by its suffix
// alone:
//
//	.yaml   header document then data document, or one merged mapping
//	.json   one merged object with a "meta" key
//	.jsonl  header line, about line, then one tagged entry per line
//
// IterFile opens a document as a Stream of schema.Entry values. YAML and
// JSON documents are decoded up front. JSON Lines documents are decoded one
// line at a time and hold their file open until the stream is exhausted or
// closed, so a Stream must always be closed (ranging over All does it).
// IterDir walks a directory and opens every regular file in it.
//
// Save writes a schema.Root. Saving with WithSort normalizes a copy first,
// which makes the output byte-stable for equal content.
//
// Errors are *ReadError or *SaveError values carrying the failing layer
// (see ErrorKind) and wrapping either a sentinel such as ErrNoMeta or the
// underlying decoder or filesystem error.
package substrate
