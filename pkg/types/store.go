package types

import "errors"

// GrammarStore keeps compiled grammars so an editor session can load the most
// recent one without recompiling.
type GrammarStore interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached if
	// called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	Detach() error

	// SaveGrammar records grammar text and returns its generated ID.
	SaveGrammar(content string, tagCount int) (string, error)

	// GetGrammar returns the grammar with the given ID, or ErrNotFound.
	GetGrammar(id string) (*GrammarRecord, error)

	// LatestGrammar returns the most recently saved grammar, or ErrNotFound.
	LatestGrammar() (*GrammarRecord, error)

	// ListGrammars returns all grammars, newest first.
	ListGrammars() ([]*GrammarRecord, error)
}

// Store lifecycle and lookup errors.
var (
	ErrStoreDetached   = errors.New("grammar store is detached")
	ErrAlreadyAttached = errors.New("grammar store is already attached")
	ErrNotFound        = errors.New("grammar not found")
	ErrInvalidID       = errors.New("invalid grammar ID")
	ErrInvalidContent  = errors.New("content must not be empty")
)
