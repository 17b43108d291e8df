package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/14kear/poll-service/internal/entity"
	"github.com/14kear/poll-service/internal/repo"
	"github.com/lib/pq"
)

type Storage struct {
	db *sql.DB
}

func New(postgresURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// SavePollWithOptions inserts the poll row and all of its option rows in a
// single transaction, so a poll can never be left without options.
func (s *Storage) SavePollWithOptions(
	ctx context.Context,
	title, description string,
	creatorID int64,
	singleVote bool,
	expiresAt *time.Time,
	options []string,
) (int64, error) {
	const op = "storage.postgres.SavePollWithOptions"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	query := `INSERT INTO polls (title, description, creator_id, status, single_vote, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var pollID int64
	err = tx.QueryRowContext(ctx, query, title, description, creatorID, entity.PollStatusActive, singleVote, expiresAt).Scan(&pollID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	optionQuery := `INSERT INTO options (poll_id, text) VALUES ($1, $2)`
	for _, text := range options {
		if _, err := tx.ExecContext(ctx, optionQuery, pollID, text); err != nil {
			return 0, fmt.Errorf("%s: option %q: %w", op, text, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return pollID, nil
}

func (s *Storage) GetPollByID(ctx context.Context, id int64) (entity.Poll, error) {
	const op = "storage.postgres.GetPollByID"

	query := `SELECT id, title, description, creator_id, status, single_vote, expires_at, created_at, updated_at
		FROM polls WHERE id = $1`

	var poll entity.Poll
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&poll.ID, &poll.Title, &poll.Description, &poll.CreatorID,
		&poll.Status, &poll.SingleVote, &poll.ExpiresAt, &poll.CreatedAt, &poll.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Poll{}, fmt.Errorf("%s: %w", op, repo.ErrPollNotFound)
		}
		return entity.Poll{}, fmt.Errorf("%s: %w", op, err)
	}

	return poll, nil
}

func (s *Storage) GetPolls(ctx context.Context, limit, offset int) ([]entity.Poll, int64, error) {
	const op = "storage.postgres.GetPolls"

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM polls`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: count: %w", op, err)
	}

	query := `SELECT id, title, description, creator_id, status, single_vote, expires_at, created_at, updated_at
		FROM polls ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var polls []entity.Poll
	for rows.Next() {
		var poll entity.Poll
		if err := rows.Scan(
			&poll.ID, &poll.Title, &poll.Description, &poll.CreatorID,
			&poll.Status, &poll.SingleVote, &poll.ExpiresAt, &poll.CreatedAt, &poll.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("%s: scan: %w", op, err)
		}
		polls = append(polls, poll)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return polls, total, nil
}

func (s *Storage) UpdatePollStatus(ctx context.Context, id int64, status entity.PollStatus) error {
	const op = "storage.postgres.UpdatePollStatus"

	const query = `UPDATE polls SET status = $1, updated_at = NOW() WHERE id = $2`

	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, repo.ErrPollNotFound)
	}
	return nil
}

func (s *Storage) DeletePoll(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeletePoll"

	query := `DELETE FROM polls WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrPollNotFound
	}

	return nil
}

func (s *Storage) GetOptionByID(ctx context.Context, id int64) (entity.Option, error) {
	const op = "storage.postgres.GetOptionByID"

	query := `SELECT id, poll_id, text, created_at FROM options WHERE id = $1`

	var option entity.Option
	err := s.db.QueryRowContext(ctx, query, id).Scan(&option.ID, &option.PollID, &option.Text, &option.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Option{}, fmt.Errorf("%s: %w", op, repo.ErrOptionNotFound)
		}
		return entity.Option{}, fmt.Errorf("%s: %w", op, err)
	}

	return option, nil
}

func (s *Storage) GetOptionsByPollID(ctx context.Context, pollID int64) ([]entity.Option, error) {
	const op = "storage.postgres.GetOptionsByPollID"

	// id order is insertion order, which keeps the UI list stable.
	query := `SELECT id, poll_id, text, created_at FROM options WHERE poll_id = $1 ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var options []entity.Option
	for rows.Next() {
		var option entity.Option
		if err := rows.Scan(&option.ID, &option.PollID, &option.Text, &option.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		options = append(options, option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return options, nil
}

// SaveVote inserts one vote row. When dedup is true the voter key is also
// written to dedup_key, which carries a unique index over (poll_id, dedup_key);
// the index is the authoritative guard against concurrent double votes, and a
// unique violation surfaces as repo.ErrDuplicateVote.
func (s *Storage) SaveVote(ctx context.Context, pollID, optionID int64, voterKey string, dedup bool) (entity.Vote, error) {
	const op = "storage.postgres.SaveVote"

	query := `INSERT INTO votes (poll_id, option_id, voter_key, dedup_key)
		VALUES ($1, $2, NULLIF($3, ''), $4) RETURNING id, voted_at`

	var dedupKey sql.NullString
	if dedup && voterKey != "" {
		dedupKey = sql.NullString{String: voterKey, Valid: true}
	}

	vote := entity.Vote{PollID: pollID, OptionID: optionID, VoterKey: voterKey}
	err := s.db.QueryRowContext(ctx, query, pollID, optionID, voterKey, dedupKey).Scan(&vote.ID, &vote.VotedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.Vote{}, fmt.Errorf("%s: %w", op, repo.ErrDuplicateVote)
		}
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	return vote, nil
}

func (s *Storage) HasVoted(ctx context.Context, pollID int64, voterKey string) (bool, error) {
	const op = "storage.postgres.HasVoted"

	query := `SELECT EXISTS (SELECT 1 FROM votes WHERE poll_id = $1 AND voter_key = $2)`

	var voted bool
	if err := s.db.QueryRowContext(ctx, query, pollID, voterKey).Scan(&voted); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return voted, nil
}

// CountVotesByOption returns one row per option of the poll in creation
// order, including options with zero votes.
func (s *Storage) CountVotesByOption(ctx context.Context, pollID int64) ([]entity.OptionCount, error) {
	const op = "storage.postgres.CountVotesByOption"

	query := `SELECT o.id, o.text, COUNT(v.id)
		FROM options o
		LEFT JOIN votes v ON v.option_id = o.id
		WHERE o.poll_id = $1
		GROUP BY o.id, o.text
		ORDER BY o.id`

	rows, err := s.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var counts []entity.OptionCount
	for rows.Next() {
		var count entity.OptionCount
		if err := rows.Scan(&count.OptionID, &count.Text, &count.Votes); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		counts = append(counts, count)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return counts, nil
}

func (s *Storage) SaveLog(ctx context.Context, log *entity.Log) (int64, error) {
	const op = "storage.postgres.SaveLog"

	query := `INSERT INTO logs (user_id, action, poll_id, option_id, vote_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := s.db.QueryRowContext(ctx, query, log.UserID, log.Action, log.PollID, log.OptionID, log.VoteID).Scan(&log.ID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return log.ID, nil
}

func (s *Storage) GetLogs(ctx context.Context) ([]entity.Log, error) {
	const op = "storage.postgres.GetLogs"

	query := `SELECT id, user_id, action, poll_id, option_id, vote_id, created_at FROM logs ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var logs []entity.Log
	for rows.Next() {
		var log entity.Log
		if err := rows.Scan(&log.ID, &log.UserID, &log.Action, &log.PollID, &log.OptionID, &log.VoteID, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return logs, nil
}
