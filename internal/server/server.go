package server

import (
	"context"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"payroll-engine/internal/config"
	"payroll-engine/internal/handler"
)

type Server struct {
	addr   string
	srv    *fasthttp.Server
	logger *zap.Logger
}

func New(h *handler.Handler, cfg config.ServerConfig, logger *zap.Logger) *Server {
	return &Server{
		addr: fmt.Sprintf(":%d", cfg.Port),
		srv: &fasthttp.Server{
			Handler:      h.Handle,
			Name:         "payroll-engine",
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}
}

// Start blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("Payroll engine starting", zap.String("addr", s.addr))
	return s.srv.ListenAndServe(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	start := time.Now()
	err := s.srv.ShutdownWithContext(ctx)
	s.logger.Info("Payroll engine stopped", zap.Duration("drain", time.Since(start)), zap.Error(err))
	return err
}
