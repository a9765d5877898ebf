package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	messaging "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/domain"
)

type PgMessagingRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessagingRepository(pool *pgxpool.Pool) *PgMessagingRepository {
	return &PgMessagingRepository{pool: pool}
}

func (r *PgMessagingRepository) CreateConversation(ctx context.Context, c messaging.Conversation) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgMessagingRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO social.conversation (
			participant_one, participant_two, created_at,
			last_message_text, last_message_sender, last_message_seen, last_message_created_at
		) VALUES ($1::uuid, $2::uuid, $3, $4, NULLIF($5, '')::uuid, $6, $7)
		RETURNING id::text
	`, c.Participants[0], c.Participants[1], c.CreatedAt,
		c.LastMessage.Text, c.LastMessage.Sender, c.LastMessage.Seen, c.LastMessage.CreatedAt,
	).Scan(&id)
	return id, err
}

func (r *PgMessagingRepository) GetConversation(ctx context.Context, conversationID string) (messaging.Conversation, bool, error) {
	if r == nil || r.pool == nil {
		return messaging.Conversation{}, false, errors.New("PgMessagingRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id::text, participant_one::text, participant_two::text, created_at,
		       last_message_text, COALESCE(last_message_sender::text, ''), last_message_seen, last_message_created_at
		FROM social.conversation
		WHERE id = $1::uuid
	`, conversationID)
	return scanConversation(row)
}

func (r *PgMessagingRepository) FindConversationByParticipants(ctx context.Context, userA string, userB string) (messaging.Conversation, bool, error) {
	if r == nil || r.pool == nil {
		return messaging.Conversation{}, false, errors.New("PgMessagingRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id::text, participant_one::text, participant_two::text, created_at,
		       last_message_text, COALESCE(last_message_sender::text, ''), last_message_seen, last_message_created_at
		FROM social.conversation
		WHERE (participant_one = $1::uuid AND participant_two = $2::uuid)
		   OR (participant_one = $2::uuid AND participant_two = $1::uuid)
	`, userA, userB)
	return scanConversation(row)
}

func (r *PgMessagingRepository) UpdateLastMessage(ctx context.Context, conversationID string, snapshot messaging.LastMessage) error {
	if r == nil || r.pool == nil {
		return errors.New("PgMessagingRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE social.conversation
		SET last_message_text = $2,
		    last_message_sender = NULLIF($3, '')::uuid,
		    last_message_seen = $4,
		    last_message_created_at = $5
		WHERE id = $1::uuid
	`, conversationID, snapshot.Text, snapshot.Sender, snapshot.Seen, snapshot.CreatedAt)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgMessagingRepository) ListConversationsForUser(ctx context.Context, userID string) ([]messaging.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessagingRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, participant_one::text, participant_two::text, created_at,
		       last_message_text, COALESCE(last_message_sender::text, ''), last_message_seen, last_message_created_at
		FROM social.conversation
		WHERE participant_one = $1::uuid OR participant_two = $1::uuid
		ORDER BY last_message_created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []messaging.Conversation
	for rows.Next() {
		var c messaging.Conversation
		if err := rows.Scan(
			&c.ID, &c.Participants[0], &c.Participants[1], &c.CreatedAt,
			&c.LastMessage.Text, &c.LastMessage.Sender, &c.LastMessage.Seen, &c.LastMessage.CreatedAt,
		); err != nil {
			return nil, err
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

func (r *PgMessagingRepository) SaveMessage(ctx context.Context, m messaging.Message) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgMessagingRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO social.message (conversation_id, sender_id, text, image_url, seen, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6)
		RETURNING id::text
	`, m.ConversationID, m.Sender, m.Text, m.ImageURL, m.Seen, m.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgMessagingRepository) ListMessages(ctx context.Context, conversationID string) ([]messaging.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessagingRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, conversation_id::text, sender_id::text, text, image_url, seen, created_at
		FROM social.message
		WHERE conversation_id = $1::uuid
		ORDER BY created_at ASC
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []messaging.Message
	for rows.Next() {
		var m messaging.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Sender, &m.Text, &m.ImageURL, &m.Seen, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *PgMessagingRepository) MarkMessagesSeen(ctx context.Context, conversationID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgMessagingRepository: nil pool")
	}
	if _, err := r.pool.Exec(ctx, `
		UPDATE social.message SET seen = true
		WHERE conversation_id = $1::uuid AND seen = false
	`, conversationID); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE social.conversation SET last_message_seen = true
		WHERE id = $1::uuid
	`, conversationID)
	return err
}

func scanConversation(row pgx.Row) (messaging.Conversation, bool, error) {
	var c messaging.Conversation
	err := row.Scan(
		&c.ID, &c.Participants[0], &c.Participants[1], &c.CreatedAt,
		&c.LastMessage.Text, &c.LastMessage.Sender, &c.LastMessage.Seen, &c.LastMessage.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return messaging.Conversation{}, false, nil
	}
	if err != nil {
		return messaging.Conversation{}, false, err
	}
	return c, true, nil
}
