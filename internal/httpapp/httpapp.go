package httpapp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HTTPApp struct {
	log    *zap.Logger
	server *http.Server
	addr   string
}

func New(log *zap.Logger, addr string, handler http.Handler, readTimeout, writeTimeout time.Duration) *HTTPApp {
	return &HTTPApp{
		log:  log,
		addr: addr,
		server: &http.Server{
			Addr:         addr,
			Handler:      recoveryMiddleware(log, handler),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
	}
}

// Run blocks until the server stops. A graceful Stop is not an error.
func (a *HTTPApp) Run() error {
	const op = "httpapp.Run"

	l, err := net.Listen("tcp", a.addr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return a.Serve(l)
}

func (a *HTTPApp) Serve(l net.Listener) error {
	const op = "httpapp.Serve"

	a.log.Info("http server started", zap.String("addr", l.Addr().String()))

	if err := a.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *HTTPApp) Stop(ctx context.Context) error {
	a.log.Info("stopping http server", zap.String("addr", a.addr))
	return a.server.Shutdown(ctx)
}

func recoveryMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered", zap.Any("panic", rec), zap.String("path", r.URL.Path))
				http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
