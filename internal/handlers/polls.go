package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/14kear/poll-service/internal/services"
	"github.com/gin-gonic/gin"
)

type PollHandler struct {
	pollService *services.PollService
}

type CreatePollRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Options     []string   `json:"options" binding:"required"`
	ExpiresAt   *time.Time `json:"expires_at"`
	SingleVote  bool       `json:"single_vote"`
}

type CastVoteRequest struct {
	OptionID int64 `json:"option_id" binding:"required"`
}

func NewPollHandler(pollService *services.PollService) *PollHandler {
	return &PollHandler{pollService: pollService}
}

// writeError maps each service error to its own status and message, so the
// UI can tell an expired poll from a duplicate vote.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPollNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Poll not found"})
	case errors.Is(err, services.ErrPollClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "Poll is closed or has expired"})
	case errors.Is(err, services.ErrInvalidOption):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Option does not belong to this poll"})
	case errors.Is(err, services.ErrDuplicateVote):
		c.JSON(http.StatusConflict, gin.H{"error": "You have already voted in this poll"})
	case errors.Is(err, services.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to manage this poll"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}

func (h *PollHandler) CreatePoll(c *gin.Context) {
	var req CreatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	pollID, err := h.pollService.CreatePoll(c.Request.Context(), req.Title, req.Description, req.Options, req.ExpiresAt, req.SingleVote, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"poll_id": pollID})
}

func (h *PollHandler) GetPolls(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	polls, total, err := h.pollService.GetPolls(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"polls": polls, "total": total, "limit": limit, "offset": offset})
}

func (h *PollHandler) GetPollByID(c *gin.Context) {
	pollID, ok := pathID(c, "id")
	if !ok {
		return
	}

	poll, err := h.pollService.GetPollByID(c.Request.Context(), pollID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"poll": poll})
}

func (h *PollHandler) GetOptionsByPollID(c *gin.Context) {
	pollID, ok := pathID(c, "id")
	if !ok {
		return
	}

	options, err := h.pollService.GetOptionsByPollID(c.Request.Context(), pollID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"options": options})
}

// CastVote accepts both authenticated and anonymous votes. The optional
// auth middleware sets userID when a valid token came along; otherwise the
// client address is the voter fingerprint.
func (h *PollHandler) CastVote(c *gin.Context) {
	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	pollID, ok := pathID(c, "id")
	if !ok {
		return
	}

	voter := services.Voter{Fingerprint: c.ClientIP()}
	if userID, authed := userIDFromContext(c); authed {
		voter.UserID = &userID
	}

	vote, err := h.pollService.CastVote(c.Request.Context(), pollID, req.OptionID, voter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vote_id": vote.ID, "voted_at": vote.VotedAt})
}

func (h *PollHandler) GetResults(c *gin.Context) {
	pollID, ok := pathID(c, "id")
	if !ok {
		return
	}

	results, err := h.pollService.Results(c.Request.Context(), pollID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *PollHandler) ClosePoll(c *gin.Context) {
	pollID, ok := pathID(c, "id")
	if !ok {
		return
	}

	userID, authed := userIDFromContext(c)
	if !authed {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.pollService.ClosePoll(c.Request.Context(), pollID, userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"poll_id": pollID, "status": "closed"})
}

func (h *PollHandler) DeletePoll(c *gin.Context) {
	pollID, ok := pathID(c, "id")
	if !ok {
		return
	}

	userID, authed := userIDFromContext(c)
	if !authed {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.pollService.DeletePoll(c.Request.Context(), pollID, userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

func (h *PollHandler) GetLogs(c *gin.Context) {
	logs, err := h.pollService.GetLogs(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid poll id"})
		return 0, false
	}
	return id, true
}

func userIDFromContext(c *gin.Context) (int64, bool) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := userIDValue.(int64)
	return userID, ok
}
