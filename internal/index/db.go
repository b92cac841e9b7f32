package index

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// every connection to ":memory:" gets its own database, so the pool is
// pinned to one connection.
const dsn = "file::memory:"

const schema = `
CREATE TABLE messages (
    id     INTEGER PRIMARY KEY,
    ts     TEXT NOT NULL,
    sender TEXT NOT NULL DEFAULT '',
    kind   TEXT NOT NULL,
    body   TEXT NOT NULL,
    line   INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX messages_sender ON messages(sender);

CREATE VIRTUAL TABLE messages_fts USING fts5(
    body,
    content=messages,
    content_rowid=id,
    tokenize='unicode61'
);

CREATE TRIGGER messages_ai AFTER INSERT ON messages BEGIN
    INSERT INTO messages_fts(rowid, body) VALUES (new.id, new.body);
END;

CREATE TRIGGER messages_ad AFTER DELETE ON messages BEGIN
    INSERT INTO messages_fts(messages_fts, rowid, body) VALUES('delete', old.id, old.body);
END;
`

// DB is an in-memory index over one transcript. Nothing is written to disk;
// the data is gone once the DB is closed.
type DB struct {
	db *sql.DB
}

func Open() (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

func (d *DB) MessageCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&n)
	return n, err
}

func (d *DB) FTSCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM messages_fts").Scan(&n)
	return n, err
}

type MessageRow struct {
	ID     int // position in the transcript, 0-based
	Ts     string
	Sender string // empty for notifications
	Kind   string
	Body   string
	Line   int
}

const selectRow = "SELECT id, ts, sender, kind, body, line FROM messages"

func (d *DB) Get(id int) (*MessageRow, error) {
	var r MessageRow
	err := d.db.QueryRow(selectRow+" WHERE id = ?", id).
		Scan(&r.ID, &r.Ts, &r.Sender, &r.Kind, &r.Body, &r.Line)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Window returns the messages within context positions of hitID.
// hitIdx is the hit's index in the returned slice, or -1 when hitID is not
// in the index, in which case the whole transcript is returned.
func (d *DB) Window(hitID, context int) (rows []MessageRow, hitIdx int, total int, err error) {
	total, err = d.MessageCount()
	if err != nil {
		return nil, -1, 0, err
	}

	start, end := 0, total-1
	if hitID >= 0 && hitID < total {
		start = max(hitID-context, 0)
		end = min(hitID+context, total-1)
	}

	q, err := d.db.Query(selectRow+" WHERE id BETWEEN ? AND ? ORDER BY id", start, end)
	if err != nil {
		return nil, -1, 0, err
	}
	defer q.Close()

	hitIdx = -1
	for q.Next() {
		var r MessageRow
		if err := q.Scan(&r.ID, &r.Ts, &r.Sender, &r.Kind, &r.Body, &r.Line); err != nil {
			return nil, -1, 0, err
		}
		if r.ID == hitID {
			hitIdx = len(rows)
		}
		rows = append(rows, r)
	}
	return rows, hitIdx, total, q.Err()
}
