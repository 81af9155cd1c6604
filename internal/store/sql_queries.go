package store

// Placeholders are written in ascending first-occurrence order so the
// same query text binds identically under pgx and go-sqlite3.
const (
	getNode = `SELECT path, value, version, updated_at
	FROM nodes
	WHERE path = $1;`

	getNodeVersion = `SELECT version
	FROM nodes
	WHERE path = $1;`

	createNode = `INSERT INTO nodes (path, value, version, updated_at)
	VALUES ($1, $2, 1, $3);`

	updateNode = `UPDATE nodes
	SET value = $1, version = version + 1, updated_at = $2
	WHERE path = $3 AND version = $4;`

	listNodes = `SELECT path, value, version, updated_at
	FROM nodes
	WHERE path = $1 OR path LIKE $2
	ORDER BY path;`

	appendNodeChange = `INSERT INTO node_changes (path, value, version, updated_at)
	VALUES ($1, $2, $3, $4);`

	getNodeChangesAfter = `SELECT id, path, value, version, updated_at
	FROM node_changes
	WHERE id > $1 AND (path = $2 OR path LIKE $3)
	ORDER BY id;`
)
