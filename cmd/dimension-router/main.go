package main

import (
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/debugserver"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerflags"
	"code.cloudfoundry.org/tlsconfig"
	"github.com/cloudfoundry/dropsonde"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/terraproxy/dimension-router/api"
	"github.com/terraproxy/dimension-router/bus"
	"github.com/terraproxy/dimension-router/config"
	"github.com/terraproxy/dimension-router/dispatcher"
	"github.com/terraproxy/dimension-router/extension"
	"github.com/terraproxy/dimension-router/handler_registry"
	"github.com/terraproxy/dimension-router/listener"
	"github.com/terraproxy/dimension-router/metrics_reporter"
	"github.com/terraproxy/dimension-router/models"
	"github.com/terraproxy/dimension-router/orchestrator"
	"github.com/terraproxy/dimension-router/syncer"
)

var configFile = flag.String(
	"config",
	"/var/vcap/jobs/dimension_router/config/dimension_router.yml",
	"The dimension router yml config.",
)

var subscriptionRetryInterval = flag.Duration(
	"subscriptionRetryInterval",
	5*time.Second,
	"Interval between retries to subscribe for commands on the control channel",
)

var syncInterval = flag.Duration(
	"syncInterval",
	time.Minute,
	"The interval between full reconciliations of the topology from the config file. 0 disables periodic reconciliation.",
)

var statsCollectionInterval = flag.Duration(
	"statsCollectionInterval",
	time.Minute,
	"The interval between emissions of per-destination client counts.",
)

var dropsondePort = flag.Int(
	"dropsondePort",
	3457,
	"Port the local metron agent is listening on",
)

const dropsondeOrigin = "dimension-router"

func main() {
	debugserver.AddFlags(flag.CommandLine)
	lagerflags.AddFlags(flag.CommandLine)
	flag.Parse()

	logger, reconfigurableSink := lagerflags.New("dimension-router")
	logger.Info("starting")
	clk := clock.NewClock()

	initializeDropsonde(logger)

	cfg, err := config.New(*configFile)
	if err != nil {
		logger.Error("failed-to-unmarshal-config-file", err)
		os.Exit(1)
	}

	options := cfg.Options

	destinations := models.NewDestinationRegistry()
	details := models.NewServerDetailsRegistry()
	tracking := models.NewTrackingTable()

	handlers, err := handler_registry.New(
		logger,
		func() (handler_registry.CommandHandler, error) {
			return handler_registry.NewNoopCommandHandler(), nil
		},
		func() (handler_registry.PacketHandler, error) {
			return handler_registry.NewPassthroughPacketHandler(), nil
		},
		func() (handler_registry.PacketHandler, error) {
			return handler_registry.NewPassthroughPacketHandler(), nil
		},
	)
	if err != nil {
		logger.Fatal("failed-to-initialize-handler-registry", err)
	}

	extensionManager := extension.NewManager(logger, extension.NewStaticLoader(), handlers)

	creator := func(entry models.TopologyEntry) (listener.ListenServer, error) {
		return listener.New(logger, entry, details, handlers, destinations, &options, tracking)
	}

	var reloadNotifier orchestrator.ReloadNotifier
	var apiServer *api.Server
	if enabled, apiPort := options.RestAPIEnabled(); enabled {
		apiServer = api.NewServer(logger, api.NewHandler(logger, destinations, details, tracking), apiPort)
		reloadNotifier = apiServer
	}

	orch := orchestrator.New(
		logger,
		*configFile,
		creator,
		handlers,
		extensionManager,
		destinations,
		details,
		tracking,
		&options,
		reloadNotifier,
	)

	err = orch.Reconcile()
	if err != nil {
		logger.Error("failed-initial-reconciliation", err)
		os.Exit(1)
	}

	err = extensionManager.ReloadAll(options.LogExtensionLoad())
	if err != nil {
		logger.Error("failed-initial-extension-load", err)
	}

	if options.Bus == nil || options.Bus.URI == "" || options.Bus.Channel == "" {
		logger.Error("invalid-bus-options", errors.New("options.bus.uri and options.bus.channel are required"))
		os.Exit(1)
	}

	busTLSConfig, err := buildBusTLSConfig(options.Bus)
	if err != nil {
		logger.Fatal("failed-to-create-bus-tls-config", err)
	}
	busClient := bus.NewWebsocketClient(logger, options.Bus.URI, busTLSConfig)

	syncChannel := make(chan struct{})
	commandDispatcher := dispatcher.New(busClient, orch, options.Bus.Channel, *subscriptionRetryInterval, syncChannel, logger)

	metricsEmitter := metrics_reporter.NewMetricsEmitter()
	metricsReporter := metrics_reporter.NewMetricsReporter(clk, details, metricsEmitter, *statsCollectionInterval)

	members := grouper.Members{
		{Name: "dispatcher", Runner: commandDispatcher},
		{Name: "metricsReporter", Runner: metricsReporter},
	}

	if *syncInterval > 0 {
		syncRunner := syncer.New(clk, *syncInterval, syncChannel, logger)
		members = append(members, grouper.Member{Name: "syncer", Runner: syncRunner})
	}

	if apiServer != nil {
		members = append(members, grouper.Member{Name: "rest-api", Runner: apiServer})
	}

	if dbgAddr := debugserver.DebugAddress(flag.CommandLine); dbgAddr != "" {
		members = append(grouper.Members{
			{Name: "debug-server", Runner: debugserver.Runner(dbgAddr, reconfigurableSink)},
		}, members...)
	}

	group := grouper.NewOrdered(os.Interrupt, members)

	process := ifrit.Invoke(sigmon.New(group))

	logger.Info("started")

	err = <-process.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}

	logger.Info("exited")
}

func buildBusTLSConfig(busOptions *config.BusOptions) (*tls.Config, error) {
	if busOptions.ClientCertificatePath == "" {
		return nil, nil
	}
	return tlsconfig.Build(
		tlsconfig.WithInternalServiceDefaults(),
		tlsconfig.WithIdentityFromFile(busOptions.ClientCertificatePath, busOptions.ClientPrivateKeyPath),
	).Client(
		tlsconfig.WithAuthorityFromFile(busOptions.CACertificatePath),
	)
}

func initializeDropsonde(logger lager.Logger) {
	dropsondeDestination := fmt.Sprintf("localhost:%d", *dropsondePort)
	err := dropsonde.Initialize(dropsondeDestination, dropsondeOrigin)
	if err != nil {
		logger.Error("failed-to-initialize-dropsonde", err)
	}
}
