package store

// schemaVersionV1 is the single-table account schema.
const schemaVersionV1 = 1

// schemaV1 is the account schema DDL (fresh install). List-valued fields
// are stored as JSON arrays.
var schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS users (
	email         TEXT PRIMARY KEY,
	username      TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	profile       TEXT NOT NULL DEFAULT '{}',
	deck          TEXT NOT NULL DEFAULT '[]',
	teams         TEXT NOT NULL DEFAULT '[]',
	history       TEXT NOT NULL DEFAULT '[]',
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_username ON users(username COLLATE NOCASE);
`
