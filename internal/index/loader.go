package index

import (
	"fmt"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
)

// TimeLayout is how message timestamps are stored; it sorts chronologically
// and compares correctly against a plain YYYY-MM-DD prefix.
const TimeLayout = "2006-01-02T15:04:05"

type Stats struct {
	Messages      int
	Personal      int
	Notifications int
	Senders       int
}

func (s Stats) String() string {
	return fmt.Sprintf("messages=%d personal=%d notifications=%d senders=%d",
		s.Messages, s.Personal, s.Notifications, s.Senders)
}

// Load replaces the index contents with msgs. Message i gets id i.
func Load(db *DB, msgs []parse.Message) (Stats, error) {
	var stats Stats

	tx, err := db.Raw().Begin()
	if err != nil {
		return stats, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM messages"); err != nil {
		return stats, err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO messages (id, ts, sender, kind, body, line)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return stats, err
	}
	defer stmt.Close()

	senders := make(map[string]struct{})
	for i, m := range msgs {
		sender, ok := m.Sender()
		if ok {
			stats.Personal++
			senders[sender] = struct{}{}
		} else {
			stats.Notifications++
		}
		_, err := stmt.Exec(i, m.Timestamp.Format(TimeLayout), sender, m.Kind.String(), m.Body, m.Line)
		if err != nil {
			return stats, fmt.Errorf("insert message %d: %w", i, err)
		}
		stats.Messages++
	}
	stats.Senders = len(senders)

	return stats, tx.Commit()
}
