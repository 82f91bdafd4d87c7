package syncer

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// Syncer emits on syncChannel at startup and then on every sync interval,
// prompting the dispatcher to run a full reconciliation pass.
type Syncer struct {
	clock        clock.Clock
	syncInterval time.Duration
	syncChannel  chan struct{}
	logger       lager.Logger
}

func New(
	clock clock.Clock,
	syncInterval time.Duration,
	syncChannel chan struct{},
	logger lager.Logger,
) *Syncer {
	return &Syncer{
		clock:        clock,
		syncInterval: syncInterval,
		syncChannel:  syncChannel,
		logger:       logger.Session("syncer"),
	}
}

func (s *Syncer) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	s.logger.Debug("starting")
	close(ready)
	s.logger.Debug("started")
	defer s.logger.Debug("finished")

	s.sync()

	ticker := s.clock.NewTicker(s.syncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C():
			s.sync()
		case <-signals:
			s.logger.Info("stopping")
			return nil
		}
	}
}

func (s *Syncer) sync() {
	s.logger.Debug("syncing")
	s.syncChannel <- struct{}{}
}
