package handler_registry

import (
	"sync"

	"code.cloudfoundry.org/lager/v3"

	"github.com/terraproxy/dimension-router/extension"
)

// Registry holds the live instance of each pluggable handler plus the
// ordered extension list. Each singleton slot holds exactly one instance;
// hot-swap replaces the slot atomically, so a caller that already fetched a
// handler finishes its work on the old instance while the next fetch
// observes the new one.
type Registry struct {
	lock   sync.RWMutex
	logger lager.Logger

	commandFactory       CommandHandlerFactory
	clientPacketFactory  PacketHandlerFactory
	backendPacketFactory PacketHandlerFactory

	command       CommandHandler
	clientPacket  PacketHandler
	backendPacket PacketHandler
	extensions    []extension.Extension
}

// New constructs the registry and populates every singleton slot from its
// factory. A factory failure here is returned to the caller: the process
// must not start without a full set of handlers.
func New(
	logger lager.Logger,
	commandFactory CommandHandlerFactory,
	clientPacketFactory PacketHandlerFactory,
	backendPacketFactory PacketHandlerFactory,
) (*Registry, error) {
	registry := &Registry{
		logger:               logger.Session("handler-registry"),
		commandFactory:       commandFactory,
		clientPacketFactory:  clientPacketFactory,
		backendPacketFactory: backendPacketFactory,
	}

	var err error
	registry.command, err = commandFactory()
	if err != nil {
		return nil, err
	}
	registry.clientPacket, err = clientPacketFactory()
	if err != nil {
		return nil, err
	}
	registry.backendPacket, err = backendPacketFactory()
	if err != nil {
		return nil, err
	}
	return registry, nil
}

func (r *Registry) CommandHandler() CommandHandler {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.command
}

func (r *Registry) ClientPacketHandler() PacketHandler {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.clientPacket
}

func (r *Registry) BackendPacketHandler() PacketHandler {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.backendPacket
}

// SwapCommandHandler builds a fresh command handler and replaces the slot.
// On construction failure the previous instance stays active.
func (r *Registry) SwapCommandHandler() error {
	handler, err := r.commandFactory()
	if err != nil {
		r.logger.Error("failed-to-construct-command-handler", err)
		return err
	}
	r.lock.Lock()
	r.command = handler
	r.lock.Unlock()
	r.logger.Info("swapped-command-handler")
	return nil
}

func (r *Registry) SwapClientPacketHandler() error {
	handler, err := r.clientPacketFactory()
	if err != nil {
		r.logger.Error("failed-to-construct-client-packet-handler", err)
		return err
	}
	r.lock.Lock()
	r.clientPacket = handler
	r.lock.Unlock()
	r.logger.Info("swapped-client-packet-handler")
	return nil
}

func (r *Registry) SwapBackendPacketHandler() error {
	handler, err := r.backendPacketFactory()
	if err != nil {
		r.logger.Error("failed-to-construct-backend-packet-handler", err)
		return err
	}
	r.lock.Lock()
	r.backendPacket = handler
	r.lock.Unlock()
	r.logger.Info("swapped-backend-packet-handler")
	return nil
}

// Extensions returns the current extension list in registry order.
func (r *Registry) Extensions() []extension.Extension {
	r.lock.RLock()
	defer r.lock.RUnlock()
	extensions := make([]extension.Extension, len(r.extensions))
	copy(extensions, r.extensions)
	return extensions
}

func (r *Registry) SetExtensions(extensions []extension.Extension) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.extensions = extensions
}
