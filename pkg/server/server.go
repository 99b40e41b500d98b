package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/Kareem-create21/SilentSetup/pkg/config"
	"github.com/Kareem-create21/SilentSetup/pkg/installer"
	"github.com/Kareem-create21/SilentSetup/pkg/io"
)

// APIServer hosts the project/build HTTP API over TCP.
type APIServer struct {
	Config  *config.Config
	Store   *io.MemoryStore
	Builder *installer.Builder

	Router chi.Router
	Server http.Server

	stopped bool
}

func NewAPIServer(cfg *config.Config, store *io.MemoryStore, builder *installer.Builder) *APIServer {
	return &APIServer{
		Config:  cfg,
		Store:   store,
		Builder: builder,
	}
}

func (s *APIServer) Start() error {
	address := s.Config.ListenAddress

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("listen on '%s': %v", address, err)
	}

	logrus.Infof("Listen on %s.", address)

	s.Router = chi.NewRouter()
	s.Router.Use(NewStructuredLogger(address))
	s.Router.Use(middleware.Recoverer)

	SetupProjectHandlers(s.Router, s.Store, s.Builder, s.Config)

	s.Server = http.Server{
		Handler: s.Router,
	}

	go func() {
		if err := s.Server.Serve(listener); err != nil {
			if s.stopped {
				return
			}
			logrus.Errorf("Starting HTTP server for '%s': %v", address, err)
			os.Exit(1)
		}
	}()

	return nil
}

// Stop gracefully stops the server.
func (s *APIServer) Stop() {
	s.stopped = true
	idleConnsClosed := make(chan struct{})
	logrus.Debugf("Stop server on '%s'...", s.Config.ListenAddress)
	go func() {
		err := s.Server.Shutdown(context.Background())
		if err != nil && !errors.Is(err, context.Canceled) {
			logrus.Warnf("Stop server on '%s': %v", s.Config.ListenAddress, err)
		}
		close(idleConnsClosed)
	}()

	<-idleConnsClosed
}
