package cmd

import (
	"context"
	"crowdfund/internal/config"
	"crowdfund/internal/http/handler"
	"crowdfund/internal/http/handler/middleware"
	"crowdfund/internal/http/payload"
	"crowdfund/internal/http/server"
	"crowdfund/internal/wallet"
	"crowdfund/pkg/jwt"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const challengeTTL = 5 * time.Minute

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the crowdfunding HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	logger := newLogger()

	cfg, err := config.NewServer()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	s, err := newSession(ctx, logger, cfg.Client)
	if err != nil {
		return err
	}
	defer s.Close()

	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	crowdfundHdlr := handler.NewCrowdfundHandler(
		logger,
		payload.Decoder{},
		s.crowdfund,
		jwtService,
		wallet.NewChallengeStore(challengeTTL))

	mux := http.NewServeMux()
	crowdfundHdlr.Register(mux)

	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
