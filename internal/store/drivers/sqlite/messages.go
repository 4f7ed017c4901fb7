package sqlite

import (
	"context"

	"github.com/janus-care/janus/internal/domain"
)

type messagesRepo struct {
	db db
}

func (r *messagesRepo) CreateMessage(ctx context.Context, m domain.Message) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (id, sender_id, recipient_id, body, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.SenderID, m.RecipientID, m.Body, m.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *messagesRepo) ListConversation(ctx context.Context, userA, userB string, limit int) ([]domain.Message, error) {
	// Newest window of the conversation, then reversed so callers get
	// chronological order.
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sender_id, recipient_id, body, created_at FROM messages
		 WHERE (sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		userA, userB, userB, userA, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
