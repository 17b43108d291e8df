package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	ssov1 "github.com/14kear/online_voting/protos/gen/go/auth"
	"github.com/14kear/poll-service/internal/entity"
	"github.com/14kear/poll-service/internal/repo"
	"github.com/14kear/poll-service/internal/services/mocks"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMocks struct {
	polls   *mocks.MockPollStorage
	options *mocks.MockOptionStorage
	votes   *mocks.MockVoteStorage
	logs    *mocks.MockLogStorage
	auth    *mocks.MockAdminChecker
}

func newTestService(ctrl *gomock.Controller) (*PollService, testMocks) {
	m := testMocks{
		polls:   mocks.NewMockPollStorage(ctrl),
		options: mocks.NewMockOptionStorage(ctrl),
		votes:   mocks.NewMockVoteStorage(ctrl),
		logs:    mocks.NewMockLogStorage(ctrl),
		auth:    mocks.NewMockAdminChecker(ctrl),
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewPollService(log, m.polls, m.options, m.votes, m.logs, m.auth)

	return svc, m
}

func userID(id int64) *int64 {
	return &id
}

func activePoll(id int64, singleVote bool) entity.Poll {
	return entity.Poll{
		ID:         id,
		Title:      gofakeit.Question(),
		CreatorID:  42,
		Status:     entity.PollStatusActive,
		SingleVote: singleVote,
	}
}

func TestCreatePoll_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	title := gofakeit.Question()
	m.polls.EXPECT().
		SavePollWithOptions(gomock.Any(), title, "", int64(42), true, nil, []string{"Coffee", "Tea"}).
		Return(int64(7), nil)
	m.logs.EXPECT().SaveLog(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	pollID, err := svc.CreatePoll(context.Background(), title, "", []string{"Coffee", "Tea"}, nil, true, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(7), pollID)
}

func TestCreatePoll_NormalizesOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	// trimmed, blanks dropped, duplicates removed, input order kept
	m.polls.EXPECT().
		SavePollWithOptions(gomock.Any(), "Best drink?", "", int64(42), false, nil, []string{"Coffee", "Tea", "Neither"}).
		Return(int64(3), nil)
	m.logs.EXPECT().SaveLog(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	raw := []string{"  Coffee ", "", "Tea", "Coffee", "   ", "Neither"}
	_, err := svc.CreatePoll(context.Background(), " Best drink? ", "", raw, nil, false, 42)
	require.NoError(t, err)
}

func TestCreatePoll_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestService(ctrl)

	_, err := svc.CreatePoll(context.Background(), "   ", "", []string{"A", "B"}, nil, false, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreatePoll_TooFewOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestService(ctrl)

	// only one option survives normalization
	_, err := svc.CreatePoll(context.Background(), "Best drink?", "", []string{"Coffee", " Coffee ", ""}, nil, false, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreatePoll_ExpirationInPast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestService(ctrl)

	past := time.Now().Add(-time.Hour)
	_, err := svc.CreatePoll(context.Background(), "Best drink?", "", []string{"A", "B"}, &past, false, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreatePoll_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	storageErr := errors.New("connection refused")
	m.polls.EXPECT().
		SavePollWithOptions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), storageErr)

	_, err := svc.CreatePoll(context.Background(), "Best drink?", "", []string{"A", "B"}, nil, false, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
}

func TestCastVote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	voter := Voter{UserID: userID(99)}

	m.polls.EXPECT().GetPollByID(gomock.Any(), int64(1)).Return(activePoll(1, true), nil)
	m.options.EXPECT().GetOptionByID(gomock.Any(), int64(10)).Return(entity.Option{ID: 10, PollID: 1, Text: "Coffee"}, nil)
	m.votes.EXPECT().HasVoted(gomock.Any(), int64(1), "user:99").Return(false, nil)
	m.votes.EXPECT().SaveVote(gomock.Any(), int64(1), int64(10), "user:99", true).
		Return(entity.Vote{ID: 5, PollID: 1, OptionID: 10, VoterKey: "user:99", VotedAt: time.Now()}, nil)
	m.logs.EXPECT().SaveLog(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	vote, err := svc.CastVote(context.Background(), 1, 10, voter)
	require.NoError(t, err)
	assert.Equal(t, int64(5), vote.ID)
	assert.False(t, vote.VotedAt.IsZero())
}

func TestCastVote_PollNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	m.polls.EXPECT().GetPollByID(gomock.Any(), int64(1)).Return(entity.Poll{}, repo.ErrPollNotFound)

	_, err := svc.CastVote(context.Background(), 1, 10, Voter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPollNotFound)
}

func TestCastVote_ExpiredPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	expired := activePoll(1, false)
	past := time.Now().Add(-time.Minute)
	expired.ExpiresAt = &past

	// rejected before the option is even looked at
	m.polls.EXPECT().GetPollByID(gomock.Any(), int64(1)).Return(expired, nil)

	_, err := svc.CastVote(context.Background(), 1, 10, Voter{UserID: userID(99)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPollClosed)
}

func TestCastVote_ClosedStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	closed := activePoll(1, false)
	closed.Status = entity.PollStatusClosed

	m.polls.EXPECT().GetPollByID(gomock.Any(), int64(1)).Return(closed, nil)

	_, err := svc.CastVote(context.Background(), 1, 10, Voter{UserID: userID(99)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPollClosed)
}

func TestCastVote_OptionFromAnotherPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	m.polls.EXPECT().GetPollByID(gomock.Any(), int64(1)).Return(activePoll(1, false), nil)
	m.options.EXPECT().GetOptionByID(gomock.Any(), int64(10)).Return(entity.Option{ID: 10, PollID: 2, Text: "Tea"}, nil)

	_, err := svc.CastVote(context.Background(), 1, 10, Voter{UserID: userID(99)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestCastVote_UnknownOption(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	m.polls.EXPECT().GetPollByID(gomock.Any(), int64(1)).Return(activePoll(1, false), nil)
	m.options.EXPECT().GetOptionByID(gomock.Any(), int64(10)).Return(entity.Option{}, repo.ErrOptionNotFound)

	_, err := svc.CastVote(context.Background(), 1, 10, Voter{UserID: userID(99)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestCastVote_DuplicateFastPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	m.polls.EXPECT().GetPollByID(gomock.Any(), int64(1)).Return(activePoll(1, true), nil)
	m.options.EXPECT().GetOptionByID(gomock.Any(), int64(10)).Return(entity.Option{ID: 10, PollID: 1}, nil)
	m.votes.EXPECT().HasVoted(gomock.Any(), int64(1), "user:99").Return(true, nil)

	_, err := svc.CastVote(context.Background(), 1, 10, Voter{UserID: userID(99)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateVote)
}

func TestCastVote_DuplicateLostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	// the fast path saw nothing, but a concurrent vote won the insert and
	// the unique index rejected ours
	m.polls.EXPECT().GetPollByID(gomock.Any(), int64(1)).Return(activePoll(1, true), nil)
	m.options.EXPECT().GetOptionByID(gomock.Any(), int64(10)).Return(entity.Option{ID: 10, PollID: 1}, nil)
	m.votes.EXPECT().HasVoted(gomock.Any(), int64(1), "user:99").Return(false, nil)
	m.votes.EXPECT().SaveVote(gomock.Any(), int64(1), int64(10), "user:99", true).
		Return(entity.Vote{}, repo.ErrDuplicateVote)

	_, err := svc.CastVote(context.Background(), 1, 10, Voter{UserID: userID(99)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateVote)
}

func TestCastVote_MultiVotePollSkipsDedup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	m.polls.EXPECT().GetPollByID(gomock.Any(), int64(1)).Return(activePoll(1, false), nil)
	m.options.EXPECT().GetOptionByID(gomock.Any(), int64(10)).Return(entity.Option{ID: 10, PollID: 1}, nil)
	m.votes.EXPECT().SaveVote(gomock.Any(), int64(1), int64(10), "ip:203.0.113.9", false).
		Return(entity.Vote{ID: 6}, nil)
	m.logs.EXPECT().SaveLog(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	vote, err := svc.CastVote(context.Background(), 1, 10, Voter{Fingerprint: "203.0.113.9"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), vote.ID)
}

func TestResults_Percentages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	m.votes.EXPECT().CountVotesByOption(gomock.Any(), int64(1)).Return([]entity.OptionCount{
		{OptionID: 10, Text: "Coffee", Votes: 67},
		{OptionID: 11, Text: "Tea", Votes: 43},
		{OptionID: 12, Text: "Neither", Votes: 8},
	}, nil)

	results, err := svc.Results(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(118), results.TotalVotes)
	require.Len(t, results.Options, 3)

	// rounded independently; 57+36+7 != 100 and that is fine
	assert.Equal(t, 57, results.Options[0].Percentage)
	assert.Equal(t, 36, results.Options[1].Percentage)
	assert.Equal(t, 7, results.Options[2].Percentage)

	// creation order, not vote order
	assert.Equal(t, "Coffee", results.Options[0].Text)
	assert.Equal(t, "Tea", results.Options[1].Text)
	assert.Equal(t, "Neither", results.Options[2].Text)
}

func TestResults_NoVotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	m.votes.EXPECT().CountVotesByOption(gomock.Any(), int64(1)).Return([]entity.OptionCount{
		{OptionID: 10, Text: "Coffee", Votes: 0},
		{OptionID: 11, Text: "Tea", Votes: 0},
	}, nil)

	results, err := svc.Results(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(0), results.TotalVotes)
	for _, option := range results.Options {
		assert.Equal(t, 0, option.Percentage)
		assert.Equal(t, int64(0), option.Votes)
	}
}

func TestResults_UnknownPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	m.votes.EXPECT().CountVotesByOption(gomock.Any(), int64(404)).Return(nil, nil)

	_, err := svc.Results(context.Background(), 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPollNotFound)
}

func TestClosePoll_Creator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	m.polls.EXPECT().GetPollByID(gomock.Any(), int64(1)).Return(activePoll(1, false), nil)
	m.polls.EXPECT().UpdatePollStatus(gomock.Any(), int64(1), entity.PollStatusClosed).Return(nil)
	m.logs.EXPECT().SaveLog(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	err := svc.ClosePoll(context.Background(), 1, 42)
	require.NoError(t, err)
}

func TestDeletePoll_AdminOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	m.polls.EXPECT().GetPollByID(gomock.Any(), int64(1)).Return(activePoll(1, false), nil)
	m.auth.EXPECT().IsAdmin(gomock.Any(), gomock.Any()).Return(&ssov1.IsAdminResponse{IsAdmin: true}, nil)
	m.polls.EXPECT().DeletePoll(gomock.Any(), int64(1)).Return(nil)
	m.logs.EXPECT().SaveLog(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	err := svc.DeletePoll(context.Background(), 1, 1000)
	require.NoError(t, err)
}

func TestDeletePoll_NotCreatorNotAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)

	m.polls.EXPECT().GetPollByID(gomock.Any(), int64(1)).Return(activePoll(1, false), nil)
	m.auth.EXPECT().IsAdmin(gomock.Any(), gomock.Any()).Return(&ssov1.IsAdminResponse{IsAdmin: false}, nil)

	err := svc.DeletePoll(context.Background(), 1, 1000)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestVoterKey(t *testing.T) {
	assert.Equal(t, "user:99", Voter{UserID: userID(99)}.Key())
	assert.Equal(t, "ip:203.0.113.9", Voter{Fingerprint: "203.0.113.9"}.Key())
	assert.Equal(t, "", Voter{}.Key())

	// authenticated identity wins over the fingerprint
	assert.Equal(t, "user:99", Voter{UserID: userID(99), Fingerprint: "203.0.113.9"}.Key())
}
