package dispatcher

import (
	"os"
	"sync/atomic"
	"time"

	"code.cloudfoundry.org/lager/v3"

	"github.com/terraproxy/dimension-router/bus"
	"github.com/terraproxy/dimension-router/orchestrator"
)

// Dispatcher subscribes to the control channel and maps each received
// command onto one orchestrator operation. Dispatch is synchronous on a
// single goroutine: back-to-back commands are processed strictly in arrival
// order and a reconciliation pass runs to completion before the next command
// is looked at.
type Dispatcher struct {
	busClient                 bus.Client
	orch                      orchestrator.Orchestrator
	channel                   string
	subscriptionRetryInterval time.Duration
	syncChannel               chan struct{}
	logger                    lager.Logger
}

func New(
	busClient bus.Client,
	orch orchestrator.Orchestrator,
	channel string,
	subscriptionRetryInterval time.Duration,
	syncChannel chan struct{},
	logger lager.Logger,
) *Dispatcher {
	return &Dispatcher{
		busClient:                 busClient,
		orch:                      orch,
		channel:                   channel,
		subscriptionRetryInterval: subscriptionRetryInterval,
		syncChannel:               syncChannel,
		logger:                    logger.Session("dispatcher"),
	}
}

func (d *Dispatcher) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	d.logger.Debug("starting")

	close(ready)
	d.logger.Debug("started")
	defer d.logger.Debug("finished")

	commandChan := make(chan string)

	var commandSource atomic.Value
	var stopCommandSource int32
	go func() {
		var source bus.CommandSource
		var err error

		for {
			if atomic.LoadInt32(&stopCommandSource) == 1 {
				return
			}

			d.logger.Info("subscribing-to-control-channel", lager.Data{"channel": d.channel})
			source, err = d.busClient.Subscribe(d.channel)
			if err != nil {
				d.logger.Error("failed-subscribing-to-control-channel", err)
				time.Sleep(d.subscriptionRetryInterval)
				continue
			}
			d.logger.Info("subscribed-to-control-channel")

			commandSource.Store(source)

			var command string
			for {
				command, err = source.Next()
				if err != nil {
					d.logger.Error("failed-getting-next-command", err)
					break
				}
				commandChan <- command
			}
		}
	}()

	for {
		select {
		case command := <-commandChan:
			d.dispatch(command)

		case <-d.syncChannel:
			d.orch.Reconcile()

		case <-signals:
			d.logger.Info("stopping")
			atomic.StoreInt32(&stopCommandSource, 1)
			if source := commandSource.Load(); source != nil {
				err := source.(bus.CommandSource).Close()
				if err != nil {
					d.logger.Error("failed-closing-command-source", err)
				}
			}
			return nil
		}
	}
}

// dispatch routes one command by exact, case-sensitive match. Anything
// outside the table is handed to the extension pass-through; an unmatched
// command is not an error.
func (d *Dispatcher) dispatch(command string) {
	logger := d.logger.Session("dispatch", lager.Data{"command": command})

	switch command {
	case "players":
		logger.Info("players-report", lager.Data{"report": d.orch.PlayersReport()})

	case "reload":
		d.orch.Reconcile()

	case "reloadhandlers":
		if err := d.orch.ReloadHandlers(); err == nil {
			logger.Info("reloaded-packet-handlers")
		}

	case "reloadcmds":
		if err := d.orch.ReloadCommands(); err == nil {
			logger.Info("reloaded-command-handler")
		}

	case "reloadextensions", "reloadplugins":
		d.orch.ReloadExtensions()

	default:
		d.orch.DispatchExtensionCommand(command)
	}
}
