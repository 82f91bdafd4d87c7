package api

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"

	"code.cloudfoundry.org/lager/v3"
)

// Server runs the reporting surface on the configured port and follows the
// port across topology reloads via HandleReload.
type Server struct {
	logger  lager.Logger
	handler http.Handler

	lock     sync.Mutex
	port     uint16
	listener net.Listener
}

func NewServer(logger lager.Logger, handler http.Handler, port uint16) *Server {
	return &Server{
		logger:  logger.Session("rest-api", lager.Data{"port": port}),
		handler: handler,
		port:    port,
	}
}

func (s *Server) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	err := s.bind(s.port)
	if err != nil {
		return err
	}
	s.logger.Info("serving")
	close(ready)

	<-signals
	s.logger.Info("stopping")
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

// HandleReload is called by the orchestrator after a reconciliation pass.
// When the configured port changed, the server rebinds; otherwise it is a
// no-op.
func (s *Server) HandleReload(newPort uint16) {
	s.lock.Lock()
	currentPort := s.port
	s.lock.Unlock()
	if newPort == currentPort {
		return
	}

	s.logger.Info("rebinding", lager.Data{"new-port": newPort})
	if err := s.bind(newPort); err != nil {
		s.logger.Error("failed-to-rebind", err, lager.Data{"new-port": newPort})
	}
}

func (s *Server) bind(port uint16) error {
	netListener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	s.lock.Lock()
	if s.listener != nil {
		s.listener.Close()
	}
	s.listener = netListener
	s.port = port
	s.lock.Unlock()

	go func() {
		httpServer := &http.Server{Handler: s.handler}
		httpServer.Serve(netListener)
	}()
	return nil
}
