package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/mmeshcher/smartfold-lms/internal/model"
)

const messageColumns = `id, from_user_id, to_user_id, body, sent_at`

func scanMessage(row scanner) (*model.Message, error) {
	var (
		m      model.Message
		sentAt time.Time
	)
	if err := row.Scan(&m.ID, &m.FromUserID, &m.ToUserID, &m.Body, &sentAt); err != nil {
		return nil, err
	}
	m.Timestamp = model.NewLocalDateTime(sentAt)
	return &m, nil
}

// CreateMessage сохраняет сообщение. Метка времени не меньше последней сохранённой,
// поэтому порядок по времени совпадает с порядком вставки.
func (r *PostgresRepository) CreateMessage(ctx context.Context, fromUserID, toUserID int64, body string, at time.Time) (*model.Message, error) {
	m, err := scanMessage(r.pool.QueryRow(ctx,
		`INSERT INTO messages (from_user_id, to_user_id, body, sent_at)
		 VALUES ($1, $2, $3, GREATEST($4::timestamp, COALESCE((SELECT max(sent_at) FROM messages), $4::timestamp)))
		 RETURNING `+messageColumns,
		fromUserID, toUserID, body, at,
	))
	if err != nil {
		if pgErrorCode(err) == pgerrcode.ForeignKeyViolation {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return m, nil
}

// GetConversation возвращает переписку двух пользователей в хронологическом порядке.
func (r *PostgresRepository) GetConversation(ctx context.Context, userA, userB int64) ([]model.Message, error) {
	return r.queryMessages(ctx,
		`SELECT `+messageColumns+` FROM messages
		 WHERE (from_user_id = $1 AND to_user_id = $2) OR (from_user_id = $2 AND to_user_id = $1)
		 ORDER BY sent_at, id`,
		userA, userB,
	)
}

// GetMessagesByUser возвращает все сообщения, где пользователь отправитель или получатель.
func (r *PostgresRepository) GetMessagesByUser(ctx context.Context, userID int64) ([]model.Message, error) {
	return r.queryMessages(ctx,
		`SELECT `+messageColumns+` FROM messages
		 WHERE from_user_id = $1 OR to_user_id = $1
		 ORDER BY sent_at, id`,
		userID,
	)
}

func (r *PostgresRepository) queryMessages(ctx context.Context, sql string, args ...any) ([]model.Message, error) {
	var messages []model.Message
	err := r.withRetry(ctx, func() error {
		rows, err := r.pool.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		messages = messages[:0]
		for rows.Next() {
			m, err := scanMessage(rows)
			if err != nil {
				return fmt.Errorf("scan message: %w", err)
			}
			messages = append(messages, *m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}
	return messages, nil
}
