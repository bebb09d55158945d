package sqlite

// Schema DDL for the grammar index.
const (
	createGrammars = `CREATE TABLE grammars (
    grammar_id TEXT PRIMARY KEY,
    content TEXT NOT NULL,
    tag_count INTEGER NOT NULL,
    digest TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createGrammarsCreatedIndex = `CREATE INDEX idx_grammars_created ON grammars (created_at, grammar_id);`
	createGrammarsDigestIndex  = `CREATE INDEX idx_grammars_digest ON grammars (digest);`
)

// schemaStatements are executed in order on Attach.
var schemaStatements = []string{
	createGrammars,
	createGrammarsCreatedIndex,
	createGrammarsDigestIndex,
}
