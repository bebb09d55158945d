// Package types defines the metadata, grammar and storage types shared by the
// sierra grammar compiler, the grammar parser and the completion engine,
// together with the standard sentinel errors those components return.
package types
