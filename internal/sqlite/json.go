package sqlite

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/sierra/pkg/types"
)

// timeFormat keeps a fixed number of fractional digits so created_at
// values sort lexically in time order.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// grammarJSON is one line of grammars.jsonl.
type grammarJSON struct {
	GrammarID string `json:"grammar_id"`
	Content   string `json:"content"`
	TagCount  int    `json:"tag_count"`
	Digest    string `json:"digest"`
	CreatedAt string `json:"created_at"`
}

func (g grammarJSON) record() (*types.GrammarRecord, error) {
	created, err := time.Parse(timeFormat, g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at of %s: %w", g.GrammarID, err)
	}
	return &types.GrammarRecord{
		GrammarID: g.GrammarID,
		Content:   g.Content,
		TagCount:  g.TagCount,
		Digest:    g.Digest,
		CreatedAt: created,
	}, nil
}
