package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/altera/config"
	quotesapi "github.com/Domenick1991/altera/internal/api/quotes_service_api"
	"github.com/Domenick1991/altera/internal/service/quote"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

const shutdownTimeout = 5 * time.Second

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

func NewServers(cfg *config.Config, handler http.Handler, quotes quote.QuoteUseCase) *Servers {
	grpcSrv := grpc.NewServer()
	quotesapi.Register(grpcSrv, quotesapi.NewServer(quotes))

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run serves the gRPC quote API and the HTTP API until ctx is canceled or
// either server fails.
func (s *Servers) Run(ctx context.Context, grpcAddr string) error {
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", grpcAddr, err)
	}
	return s.serve(ctx, lis)
}

func (s *Servers) serve(ctx context.Context, grpcLis net.Listener) error {
	errCh := make(chan error, 2)

	go func() {
		logrus.WithField("address", grpcLis.Addr().String()).Info("grpc server started")
		errCh <- s.grpcServer.Serve(grpcLis)
	}()

	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("http server started")
		if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.grpcServer.Stop()
		_ = s.httpServer.Close()
		return err
	case <-ctx.Done():
		logrus.Info("shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
