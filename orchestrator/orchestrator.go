package orchestrator

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"code.cloudfoundry.org/lager/v3"

	"github.com/terraproxy/dimension-router/config"
	"github.com/terraproxy/dimension-router/listener"
	"github.com/terraproxy/dimension-router/models"
)

//go:generate counterfeiter -o fakes/fake_orchestrator.go . Orchestrator

// Orchestrator owns the live topology: the map of bound listen servers, the
// shared registries, and the pluggable handler set. Every operation runs to
// completion under one lock, so commands arriving back-to-back on the
// control channel never observe a half-applied pass.
type Orchestrator interface {
	Reconcile() error
	ReloadHandlers() error
	ReloadCommands() error
	ReloadExtensions() error
	DispatchExtensionCommand(command string)
	PlayersReport() string
}

//go:generate counterfeiter -o fakes/fake_handler_swapper.go . HandlerSwapper

// HandlerSwapper is the hot-swap slice of the handler registry.
type HandlerSwapper interface {
	SwapCommandHandler() error
	SwapClientPacketHandler() error
	SwapBackendPacketHandler() error
}

//go:generate counterfeiter -o fakes/fake_extension_manager.go . ExtensionManager

// ExtensionManager is the lifecycle slice of the extension manager.
type ExtensionManager interface {
	ReloadAll(logLoad bool) error
	DispatchCommand(command string)
}

//go:generate counterfeiter -o fakes/fake_reload_notifier.go . ReloadNotifier

// ReloadNotifier is told about topology reloads so collaborators bound to an
// option-derived port can follow it. The REST reporting surface implements
// this.
type ReloadNotifier interface {
	HandleReload(newPort uint16)
}

type reloadTicket struct {
	listenPort    uint16
	topologyIndex int
}

type orchestrator struct {
	logger     lager.Logger
	configPath string
	creator    listener.Creator

	handlers   HandlerSwapper
	extensions ExtensionManager

	destinations *models.DestinationRegistry
	details      *models.ServerDetailsRegistry
	tracking     *models.TrackingTable
	options      *config.Options

	notifier ReloadNotifier

	lock      sync.Mutex
	listeners map[uint16]listener.ListenServer
}

// New wires the orchestrator to its shared registries. notifier may be nil
// when no reporting surface is running.
func New(
	logger lager.Logger,
	configPath string,
	creator listener.Creator,
	handlers HandlerSwapper,
	extensions ExtensionManager,
	destinations *models.DestinationRegistry,
	details *models.ServerDetailsRegistry,
	tracking *models.TrackingTable,
	options *config.Options,
	notifier ReloadNotifier,
) Orchestrator {
	return &orchestrator{
		logger:       logger.Session("orchestrator"),
		configPath:   configPath,
		creator:      creator,
		handlers:     handlers,
		extensions:   extensions,
		destinations: destinations,
		details:      details,
		tracking:     tracking,
		options:      options,
		notifier:     notifier,
		listeners:    make(map[uint16]listener.ListenServer),
	}
}

// Reconcile re-reads the configuration and drives the live listener map to
// the desired topology. Existing ports are updated in place so their server
// identity, and therefore their established connections, survive. Ports no
// longer desired are shut down before any new port is bound. A failure
// abandons the pass where it stands: already-applied steps are not rolled
// back.
func (o *orchestrator) Reconcile() error {
	logger := o.logger.Session("reconcile")
	logger.Debug("start")
	defer logger.Debug("end")

	o.lock.Lock()
	defer o.lock.Unlock()

	cfg, err := config.New(o.configPath)
	if err != nil {
		logger.Error("failed-to-load-config", err)
		return err
	}
	topology := cfg.Topology()

	var tickets []reloadTicket
	desired := make(map[uint16]struct{}, len(topology))

	for i, entry := range topology {
		desired[entry.ListenPort] = struct{}{}
		if server, ok := o.listeners[entry.ListenPort]; ok {
			server.UpdateInfo(entry)
			o.registerDestinations(entry)
		} else {
			tickets = append(tickets, reloadTicket{listenPort: entry.ListenPort, topologyIndex: i})
		}
	}

	for port, server := range o.listeners {
		if _, ok := desired[port]; ok {
			continue
		}
		logger.Info("shutting-down-listener", lager.Data{"port": port})
		if shutdownErr := server.Shutdown(); shutdownErr != nil {
			logger.Error("failed-to-shutdown-listener", shutdownErr, lager.Data{"port": port})
		}
		delete(o.listeners, port)
	}

	for _, ticket := range tickets {
		entry := topology[ticket.topologyIndex]
		server, createErr := o.creator(entry)
		if createErr != nil {
			logger.Error("failed-to-create-listener", createErr, lager.Data{"port": ticket.listenPort})
			return createErr
		}
		o.listeners[ticket.listenPort] = server
		o.registerDestinations(entry)
		logger.Info("created-listener", lager.Data{"port": ticket.listenPort})
	}

	o.options.Merge(cfg.Options)

	if o.notifier != nil {
		if enabled, port := o.options.RestAPIEnabled(); enabled {
			o.notifier.HandleReload(port)
		}
	}

	logger.Info("reconciled", lager.Data{"listeners": len(o.listeners)})
	return nil
}

func (o *orchestrator) registerDestinations(entry models.TopologyEntry) {
	for _, destination := range entry.Pool {
		o.destinations.Register(destination)
		o.details.Ensure(destination.Name)
	}
}

// ReloadHandlers hot-swaps the client-packet and backend-packet handlers.
// Both swaps are attempted even if the first fails; a failed slot keeps its
// previous instance.
func (o *orchestrator) ReloadHandlers() error {
	o.lock.Lock()
	defer o.lock.Unlock()

	clientErr := o.handlers.SwapClientPacketHandler()
	backendErr := o.handlers.SwapBackendPacketHandler()
	if clientErr != nil {
		return clientErr
	}
	return backendErr
}

// ReloadCommands hot-swaps only the command-handler slot.
func (o *orchestrator) ReloadCommands() error {
	o.lock.Lock()
	defer o.lock.Unlock()
	return o.handlers.SwapCommandHandler()
}

func (o *orchestrator) ReloadExtensions() error {
	o.lock.Lock()
	defer o.lock.Unlock()
	return o.extensions.ReloadAll(o.options.LogExtensionLoad())
}

func (o *orchestrator) DispatchExtensionCommand(command string) {
	o.extensions.DispatchCommand(command)
}

// PlayersReport renders the per-destination client counts and the tracking
// table. It reads every registry and mutates none. Destinations removed from
// the topology still appear with their last counts; details entries are
// never pruned.
func (o *orchestrator) PlayersReport() string {
	details := o.details.Snapshot()
	names := make([]string, 0, len(details))
	for name := range details {
		names = append(names, name)
	}
	sort.Strings(names)

	var report strings.Builder
	for _, name := range names {
		fmt.Fprintf(&report, "%s: %d clients\n", name, details[name].ClientCount)
	}

	tracked := o.tracking.Snapshot()
	trackedNames := make([]string, 0, len(tracked))
	for name := range tracked {
		trackedNames = append(trackedNames, name)
	}
	sort.Strings(trackedNames)
	for _, name := range trackedNames {
		fmt.Fprintf(&report, "%s @ %s\n", name, tracked[name].Destination)
	}
	return report.String()
}
