package listener

import (
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"

	"github.com/terraproxy/dimension-router/config"
	"github.com/terraproxy/dimension-router/handler_registry"
	"github.com/terraproxy/dimension-router/models"
)

//go:generate counterfeiter -o fakes/fake_listen_server.go . ListenServer

// ListenServer is one bound port routing new connections across its backend
// pool. UpdateInfo swaps the pool in place, leaving the bound port and every
// established connection untouched. Shutdown releases the port and is
// fire-and-forget: it does not wait for connection draining.
type ListenServer interface {
	UpdateInfo(entry models.TopologyEntry)
	Shutdown() error
}

// Creator builds a listen server for one topology entry. The orchestrator
// goes through this indirection so tests can hand it fakes.
type Creator func(entry models.TopologyEntry) (ListenServer, error)

const backendDialTimeout = 10 * time.Second

// TCPListenServer accepts game clients on one port and relays them to a
// destination picked round-robin from the current pool. The handler
// registry, destination registry, server details, and tracking table are
// shared handles injected at construction.
type TCPListenServer struct {
	logger       lager.Logger
	listener     net.Listener
	handlers     *handler_registry.Registry
	destinations *models.DestinationRegistry
	details      *models.ServerDetailsRegistry
	tracking     *models.TrackingTable
	options      *config.Options

	lock sync.Mutex
	pool models.DestinationPool
	next int

	closeOnce sync.Once
}

func New(
	logger lager.Logger,
	entry models.TopologyEntry,
	details *models.ServerDetailsRegistry,
	handlers *handler_registry.Registry,
	destinations *models.DestinationRegistry,
	options *config.Options,
	tracking *models.TrackingTable,
) (*TCPListenServer, error) {
	netListener, err := net.Listen("tcp", fmt.Sprintf(":%d", entry.ListenPort))
	if err != nil {
		return nil, err
	}

	server := &TCPListenServer{
		logger:       logger.Session("listen-server", lager.Data{"port": entry.ListenPort}),
		listener:     netListener,
		handlers:     handlers,
		destinations: destinations,
		details:      details,
		tracking:     tracking,
		options:      options,
		pool:         entry.Pool,
	}

	go server.acceptLoop()
	server.logger.Info("listening")
	return server, nil
}

// UpdateInfo replaces the backend pool in place. The server's identity and
// bound port do not change, so established connections are unaffected.
func (s *TCPListenServer) UpdateInfo(entry models.TopologyEntry) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.pool = entry.Pool
	s.next = 0
	s.logger.Info("updated-pool", lager.Data{"destinations": len(entry.Pool)})
}

// Addr reports the bound address, which differs from the configured port
// when the entry asked for port 0.
func (s *TCPListenServer) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *TCPListenServer) Shutdown() error {
	var err error
	s.closeOnce.Do(func() {
		s.logger.Info("shutting-down")
		err = s.listener.Close()
	})
	return err
}

func (s *TCPListenServer) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.logger.Debug("accept-loop-exiting", lager.Data{"error": err.Error()})
			return
		}
		go s.handleConnection(conn)
	}
}

// nextDestination picks round-robin from the current pool.
func (s *TCPListenServer) nextDestination() (models.Destination, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if len(s.pool) == 0 {
		return models.Destination{}, false
	}
	destination := s.pool[s.next%len(s.pool)]
	s.next++
	return destination, true
}

func (s *TCPListenServer) handleConnection(clientConn net.Conn) {
	defer clientConn.Close()

	destination, ok := s.nextDestination()
	if !ok {
		s.logger.Info("no-destination-available")
		return
	}

	backendConn, err := net.DialTimeout("tcp", destination.ConnectionAddress(), backendDialTimeout)
	if err != nil {
		s.logger.Error("failed-to-dial-destination", err, lager.Data{"destination": destination.Name})
		return
	}
	defer backendConn.Close()

	clientName := clientConn.RemoteAddr().String()
	if s.options.LogConnections() {
		s.logger.Info("client-connected", lager.Data{"client": clientName, "destination": destination.Name})
	}
	s.details.IncrementClientCount(destination.Name)
	s.tracking.Track(clientName, models.ClientPresence{Destination: destination.Name, JoinedAt: time.Now()})
	defer func() {
		s.details.DecrementClientCount(destination.Name)
		s.tracking.Remove(clientName)
		if s.options.LogConnections() {
			s.logger.Info("client-disconnected", lager.Data{"client": clientName})
		}
	}()

	done := make(chan struct{}, 2)
	go func() {
		s.relay(clientName, clientConn, backendConn, s.handlers.ClientPacketHandler)
		done <- struct{}{}
	}()
	go func() {
		s.relay(clientName, backendConn, clientConn, s.handlers.BackendPacketHandler)
		done <- struct{}{}
	}()
	<-done
}

// relay copies framed data from src to dst, consulting the currently active
// packet handler per read. The handler is fetched fresh each time so a
// hot-swap takes effect on the next packet; a read already in flight
// finishes under the handler it captured.
func (s *TCPListenServer) relay(clientName string, src, dst net.Conn, handler func() handler_registry.PacketHandler) {
	buf := make([]byte, 32*1024)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			forward, handlerErr := handler().HandlePacket(clientName, buf[:n])
			if handlerErr != nil {
				s.logger.Error("packet-handler-failed", handlerErr)
			}
			if forward {
				if _, writeErr := dst.Write(buf[:n]); writeErr != nil {
					return
				}
			}
		}
		if err != nil {
			if err != io.EOF {
				s.logger.Debug("relay-read-failed", lager.Data{"error": err.Error()})
			}
			return
		}
	}
}
