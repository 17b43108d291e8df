package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	ssov1 "github.com/14kear/online_voting/protos/gen/go/auth"
	"github.com/14kear/poll-service/internal/entity"
	"github.com/14kear/poll-service/internal/repo"
	sl "github.com/14kear/sso-prettyslog/slogpretty/errors"
	"google.golang.org/grpc"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrPollNotFound     = errors.New("poll not found")
	ErrPollClosed       = errors.New("poll is closed")
	ErrInvalidOption    = errors.New("option does not belong to poll")
	ErrDuplicateVote    = errors.New("voter has already voted in this poll")
	ErrPermissionDenied = errors.New("permission denied")
)

type PollService struct {
	log           *slog.Logger
	pollStorage   PollStorage
	optionStorage OptionStorage
	voteStorage   VoteStorage
	logStorage    LogStorage
	authService   AdminChecker
}

type PollStorage interface {
	SavePollWithOptions(ctx context.Context, title, description string, creatorID int64, singleVote bool, expiresAt *time.Time, options []string) (int64, error)
	GetPollByID(ctx context.Context, id int64) (entity.Poll, error)
	GetPolls(ctx context.Context, limit, offset int) ([]entity.Poll, int64, error)
	UpdatePollStatus(ctx context.Context, id int64, status entity.PollStatus) error
	DeletePoll(ctx context.Context, id int64) error
}

type OptionStorage interface {
	GetOptionByID(ctx context.Context, id int64) (entity.Option, error)
	GetOptionsByPollID(ctx context.Context, pollID int64) ([]entity.Option, error)
}

type VoteStorage interface {
	SaveVote(ctx context.Context, pollID, optionID int64, voterKey string, dedup bool) (entity.Vote, error)
	HasVoted(ctx context.Context, pollID int64, voterKey string) (bool, error)
	CountVotesByOption(ctx context.Context, pollID int64) ([]entity.OptionCount, error)
}

type LogStorage interface {
	SaveLog(ctx context.Context, log *entity.Log) (int64, error)
	GetLogs(ctx context.Context) ([]entity.Log, error)
}

// AdminChecker is the slice of the SSO auth client the service needs.
// ssov1.AuthClient satisfies it.
type AdminChecker interface {
	IsAdmin(ctx context.Context, in *ssov1.IsAdminRequest, opts ...grpc.CallOption) (*ssov1.IsAdminResponse, error)
}

// Voter identifies who is casting a vote: an authenticated user id, or an
// anonymous fingerprint (client network address) when no session is present.
type Voter struct {
	UserID      *int64
	Fingerprint string
}

// Key returns the deduplication key for one-vote-per-voter polls.
// Empty string means the voter cannot be identified at all.
func (v Voter) Key() string {
	if v.UserID != nil {
		return fmt.Sprintf("user:%d", *v.UserID)
	}
	if v.Fingerprint != "" {
		return "ip:" + v.Fingerprint
	}
	return ""
}

func NewPollService(
	log *slog.Logger,
	pollStorage PollStorage,
	optionStorage OptionStorage,
	voteStorage VoteStorage,
	logStorage LogStorage,
	authService AdminChecker,
) *PollService {
	return &PollService{
		log:           log,
		pollStorage:   pollStorage,
		optionStorage: optionStorage,
		voteStorage:   voteStorage,
		logStorage:    logStorage,
		authService:   authService,
	}
}

// CreatePoll validates the input and persists the poll together with its
// options in one transaction. Options are trimmed, blanks dropped and
// duplicates removed before the two-option minimum is checked.
func (p *PollService) CreatePoll(
	ctx context.Context,
	title, description string,
	options []string,
	expiresAt *time.Time,
	singleVote bool,
	creatorID int64,
) (int64, error) {
	const op = "polls.CreatePoll"

	log := p.log.With(slog.String("op", op), slog.Int64("creatorID", creatorID))

	title = strings.TrimSpace(title)
	if title == "" {
		return 0, fmt.Errorf("%w: title is required", ErrValidation)
	}

	normalized := normalizeOptions(options)
	if len(normalized) < 2 {
		return 0, fmt.Errorf("%w: at least two distinct options are required", ErrValidation)
	}

	if expiresAt != nil && !expiresAt.After(time.Now()) {
		return 0, fmt.Errorf("%w: expiration must be in the future", ErrValidation)
	}

	pollID, err := p.pollStorage.SavePollWithOptions(ctx, title, strings.TrimSpace(description), creatorID, singleVote, expiresAt, normalized)
	if err != nil {
		log.Error("failed to save poll", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("poll created", slog.Int64("pollID", pollID), slog.Int("options", len(normalized)))

	p.audit(ctx, &entity.Log{UserID: &creatorID, Action: op, PollID: &pollID})

	return pollID, nil
}

// CastVote runs the admission sequence in order, short-circuiting on the
// first failure: poll exists, poll open, option belongs to poll, no prior
// vote for single-vote polls. The HasVoted check is a fast path only; the
// unique index behind storage is what settles concurrent duplicates.
func (p *PollService) CastVote(ctx context.Context, pollID, optionID int64, voter Voter) (entity.Vote, error) {
	const op = "polls.CastVote"

	log := p.log.With(slog.String("op", op), slog.Int64("pollID", pollID), slog.Int64("optionID", optionID))

	poll, err := p.pollStorage.GetPollByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, repo.ErrPollNotFound) {
			return entity.Vote{}, fmt.Errorf("%s: %w", op, ErrPollNotFound)
		}
		log.Error("failed to load poll", sl.Err(err))
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	if !poll.IsOpen(time.Now()) {
		return entity.Vote{}, fmt.Errorf("%s: %w", op, ErrPollClosed)
	}

	option, err := p.optionStorage.GetOptionByID(ctx, optionID)
	if err != nil {
		if errors.Is(err, repo.ErrOptionNotFound) {
			return entity.Vote{}, fmt.Errorf("%s: %w", op, ErrInvalidOption)
		}
		log.Error("failed to load option", sl.Err(err))
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}
	if option.PollID != pollID {
		return entity.Vote{}, fmt.Errorf("%s: %w", op, ErrInvalidOption)
	}

	voterKey := voter.Key()
	dedup := poll.SingleVote && voterKey != ""

	if dedup {
		voted, err := p.voteStorage.HasVoted(ctx, pollID, voterKey)
		if err != nil {
			log.Error("failed to check previous vote", sl.Err(err))
			return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
		}
		if voted {
			return entity.Vote{}, fmt.Errorf("%s: %w", op, ErrDuplicateVote)
		}
	}

	vote, err := p.voteStorage.SaveVote(ctx, pollID, optionID, voterKey, dedup)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateVote) {
			return entity.Vote{}, fmt.Errorf("%s: %w", op, ErrDuplicateVote)
		}
		log.Error("failed to save vote", sl.Err(err))
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("vote recorded", slog.Int64("voteID", vote.ID))

	p.audit(ctx, &entity.Log{UserID: voter.UserID, Action: op, PollID: &pollID, OptionID: &optionID, VoteID: &vote.ID})

	return vote, nil
}

// Results aggregates current vote counts for the poll. Each percentage is
// rounded independently, so the column may not sum to exactly 100; the UI
// treats that as expected. A poll without options reports not found,
// distinct from a poll with options and zero votes.
func (p *PollService) Results(ctx context.Context, pollID int64) (entity.PollResults, error) {
	const op = "polls.Results"

	counts, err := p.voteStorage.CountVotesByOption(ctx, pollID)
	if err != nil {
		p.log.Error("failed to count votes", slog.String("op", op), sl.Err(err))
		return entity.PollResults{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(counts) == 0 {
		return entity.PollResults{}, fmt.Errorf("%s: %w", op, ErrPollNotFound)
	}

	results := entity.PollResults{PollID: pollID, Options: make([]entity.OptionResult, 0, len(counts))}
	for _, c := range counts {
		results.TotalVotes += c.Votes
	}

	for _, c := range counts {
		percentage := 0
		if results.TotalVotes > 0 {
			percentage = int(math.Round(float64(c.Votes) / float64(results.TotalVotes) * 100))
		}
		results.Options = append(results.Options, entity.OptionResult{
			OptionID:   c.OptionID,
			Text:       c.Text,
			Votes:      c.Votes,
			Percentage: percentage,
		})
	}

	return results, nil
}

func (p *PollService) GetPollByID(ctx context.Context, id int64) (entity.Poll, error) {
	const op = "polls.GetPollByID"

	poll, err := p.pollStorage.GetPollByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrPollNotFound) {
			return entity.Poll{}, fmt.Errorf("%s: %w", op, ErrPollNotFound)
		}
		return entity.Poll{}, fmt.Errorf("%s: %w", op, err)
	}

	return poll, nil
}

func (p *PollService) GetPolls(ctx context.Context, limit, offset int) ([]entity.Poll, int64, error) {
	const op = "polls.GetPolls"

	polls, total, err := p.pollStorage.GetPolls(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return polls, total, nil
}

func (p *PollService) GetOptionsByPollID(ctx context.Context, pollID int64) ([]entity.Option, error) {
	const op = "polls.GetOptionsByPollID"

	options, err := p.optionStorage.GetOptionsByPollID(ctx, pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return options, nil
}

// ClosePoll stops a poll from accepting further votes. Only the creator or
// an admin may close it.
func (p *PollService) ClosePoll(ctx context.Context, pollID, userID int64) error {
	const op = "polls.ClosePoll"

	if err := p.authorizePollOwner(ctx, op, pollID, userID); err != nil {
		return err
	}

	if err := p.pollStorage.UpdatePollStatus(ctx, pollID, entity.PollStatusClosed); err != nil {
		if errors.Is(err, repo.ErrPollNotFound) {
			return fmt.Errorf("%s: %w", op, ErrPollNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	p.audit(ctx, &entity.Log{UserID: &userID, Action: op, PollID: &pollID})

	return nil
}

// DeletePoll removes the poll and, through foreign keys, its options and
// votes. Only the creator or an admin may delete it.
func (p *PollService) DeletePoll(ctx context.Context, pollID, userID int64) error {
	const op = "polls.DeletePoll"

	if err := p.authorizePollOwner(ctx, op, pollID, userID); err != nil {
		return err
	}

	if err := p.pollStorage.DeletePoll(ctx, pollID); err != nil {
		if errors.Is(err, repo.ErrPollNotFound) {
			return fmt.Errorf("%s: %w", op, ErrPollNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	p.audit(ctx, &entity.Log{UserID: &userID, Action: op, PollID: &pollID})

	return nil
}

func (p *PollService) GetLogs(ctx context.Context) ([]entity.Log, error) {
	const op = "polls.GetLogs"

	logs, err := p.logStorage.GetLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return logs, nil
}

func (p *PollService) authorizePollOwner(ctx context.Context, op string, pollID, userID int64) error {
	poll, err := p.pollStorage.GetPollByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, repo.ErrPollNotFound) {
			return fmt.Errorf("%s: %w", op, ErrPollNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if poll.CreatorID == userID {
		return nil
	}

	isAdminResp, err := p.authService.IsAdmin(ctx, &ssov1.IsAdminRequest{UserId: userID})
	if err != nil {
		return fmt.Errorf("%s: failed to check admin rights: %w", op, err)
	}
	if !isAdminResp.IsAdmin {
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	return nil
}

// audit records the action for the activity log. A failed audit write never
// fails the operation itself.
func (p *PollService) audit(ctx context.Context, log *entity.Log) {
	if _, err := p.logStorage.SaveLog(ctx, log); err != nil {
		p.log.Warn("failed to save audit log", slog.String("action", log.Action), sl.Err(err))
	}
}

func normalizeOptions(options []string) []string {
	seen := make(map[string]struct{}, len(options))
	normalized := make([]string, 0, len(options))
	for _, option := range options {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}
		if _, ok := seen[option]; ok {
			continue
		}
		seen[option] = struct{}{}
		normalized = append(normalized, option)
	}
	return normalized
}
