package postgres

import "strings"

// Store-natural order is insertion order; ids are assigned by an ascending
// sequence, so ORDER BY id reproduces it.
const (
	querySearch = `
		SELECT id, name, username, email, created_at, updated_at
		FROM records
		WHERE deleted_at IS NULL
		  AND name ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY id
		LIMIT $2`

	queryPage = `
		SELECT id, name, username, email, created_at, updated_at
		FROM records
		WHERE deleted_at IS NULL
		ORDER BY id
		LIMIT $1 OFFSET $2`

	queryDelete = `
		UPDATE records
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes ILIKE metacharacters so the term is matched as a
// literal substring.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
