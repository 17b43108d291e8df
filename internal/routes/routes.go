package routes

import (
	"github.com/14kear/poll-service/internal/handlers"
	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(rg *gin.RouterGroup, handler *handlers.PollHandler) {
	{
		rg.GET("/polls", handler.GetPolls)
		rg.GET("/polls/:id", handler.GetPollByID)
		rg.GET("/polls/:id/options", handler.GetOptionsByPollID)
		rg.GET("/polls/:id/results", handler.GetResults)
	}
}

// RegisterVoteRoutes registers routes that sit behind the optional auth
// middleware: a vote is accepted with or without a session.
func RegisterVoteRoutes(rg *gin.RouterGroup, handler *handlers.PollHandler) {
	{
		rg.POST("/polls/:id/votes", handler.CastVote)
	}
}

func RegisterPrivateRoutes(rg *gin.RouterGroup, handler *handlers.PollHandler) {
	{
		rg.POST("/polls", handler.CreatePoll)
		rg.POST("/polls/:id/close", handler.ClosePoll)
		rg.DELETE("/polls/:id", handler.DeletePoll)

		rg.GET("/logs", handler.GetLogs)
	}
}
