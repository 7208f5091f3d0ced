package store

// createCredentialsTable 是凭据库唯一的一张表。
// AUTOINCREMENT 保证 id 在删除后也不会被复用。
const createCredentialsTable = `CREATE TABLE credentials (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    name     TEXT UNIQUE NOT NULL,
    category TEXT,
    username TEXT,
    password TEXT
)`

const (
	queryExists = `SELECT count(*) FROM credentials WHERE name = ?`

	queryInsert = `INSERT INTO credentials (name, category, username, password) VALUES (?, ?, ?, ?)`

	queryGetByName = `SELECT id, name, COALESCE(category, ''), COALESCE(username, ''), COALESCE(password, '')
FROM credentials WHERE name = ? LIMIT 2`

	queryListAll = `SELECT COALESCE(category, ''), name FROM credentials
ORDER BY COALESCE(category, ''), name`

	queryListCategory = `SELECT COALESCE(category, ''), name FROM credentials
WHERE COALESCE(category, '') = ?
ORDER BY COALESCE(category, ''), name`

	queryCount = `SELECT count(*) FROM credentials`
)
