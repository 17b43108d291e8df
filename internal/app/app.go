package app

import (
	"context"
	"log/slog"

	httpapp "github.com/14kear/poll-service/internal/app/http"
	"github.com/14kear/poll-service/internal/grpcclient"
	"github.com/14kear/poll-service/internal/handlers"
	"github.com/14kear/poll-service/internal/middleware"
	"github.com/14kear/poll-service/internal/repo/postgres"
	"github.com/14kear/poll-service/internal/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type App struct {
	HTTPServer *httpapp.App
	Polls      *services.PollService
	conn       *grpc.ClientConn
}

func NewApp(log *slog.Logger, httpPort int, storagePath string, authGRPCAddr string) *App {
	storage, err := postgres.New(storagePath)
	if err != nil {
		panic(err)
	}

	// gRPC client to the SSO auth service
	conn, err := grpc.NewClient(authGRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(err)
	}

	authClient := grpcclient.NewClient(conn)
	authMiddleware := middleware.NewAuthMiddleware(authClient.AuthClient, 1)

	pollService := services.NewPollService(log, storage, storage, storage, storage, authClient.AuthClient)
	pollHandler := handlers.NewPollHandler(pollService)

	httpApp := httpapp.NewApp(log, httpPort, pollHandler, authMiddleware.Middleware(), authMiddleware.OptionalMiddleware())

	return &App{
		HTTPServer: httpApp,
		Polls:      pollService,
		conn:       conn,
	}
}

func (a *App) Stop(ctx context.Context) error {
	if err := a.HTTPServer.Stop(ctx); err != nil {
		return err
	}
	return a.conn.Close()
}
