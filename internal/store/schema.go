package store

// createLinksTable is shared by the SQL backends.
const createLinksTable = `
	CREATE TABLE IF NOT EXISTS urls (
		short_id     TEXT PRIMARY KEY,
		original_url TEXT NOT NULL
	)
`
