// Package store persists grid documents as JSON map files.
//
// A map file carries a format version, a document ID, the grid dimensions,
// and the active cells. Loading validates the whole file before any of it
// is applied: a malformed field anywhere rejects the document entirely, so
// a corrupt file can never half-load into an editing session.
package store
