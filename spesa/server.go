package spesa

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/odit-bit/spesabot/spesa/config"
)

type Server struct {
	e   *echo.Echo
	cfg *config.Config

	ctx context.Context
}

func NewHttp(ctx context.Context, cfg *config.Config) (Server, error) {
	s, err := New(ctx, cfg)
	if err != nil {
		return Server{}, err
	}

	e := echo.New()
	e.HideBanner = true

	RestHandler(ctx, s, e)

	return Server{e: e, cfg: cfg, ctx: ctx}, nil
}

func (s *Server) Start() error {
	var err error

	// start observability
	shutdown, err := InitObservability(s.ctx, "spesa-server", s.cfg.Observe)
	if err != nil {
		return fmt.Errorf("failed init observability: %w", err)
	}

	go func() {
		<-s.ctx.Done()

		slog.Info("shutdown observability providers...")
		if xerr := shutdown(context.Background()); xerr != nil {
			err = errors.Join(err, xerr)
		}

		slog.Info("shutdown http server...")
		if xerr := s.e.Shutdown(context.Background()); xerr != nil {
			err = errors.Join(err, xerr)
		}
	}()

	if xerr := s.e.Start(s.cfg.Server.Address); !errors.Is(xerr, http.ErrServerClosed) {
		err = errors.Join(err, xerr)
	}
	return err
}
