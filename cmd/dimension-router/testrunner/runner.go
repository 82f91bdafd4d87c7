package testrunner

import (
	"os/exec"
	"time"

	"github.com/tedsuo/ifrit/ginkgomon_v2"
)

// Args used by runner
type Args struct {
	ConfigFilePath            string
	SubscriptionRetryInterval time.Duration
	SyncInterval              time.Duration
}

func (args Args) ArgSlice() []string {
	return []string{
		"-config=" + args.ConfigFilePath,
		"-subscriptionRetryInterval=" + args.SubscriptionRetryInterval.String(),
		"-syncInterval=" + args.SyncInterval.String(),
		"-logLevel=debug",
	}
}

func New(binPath string, args Args) *ginkgomon_v2.Runner {
	return ginkgomon_v2.New(ginkgomon_v2.Config{
		Name:              "dimension-router",
		AnsiColorCode:     "1;97m",
		StartCheck:        "dimension-router.started",
		StartCheckTimeout: 10 * time.Second,
		Command:           exec.Command(binPath, args.ArgSlice()...),
	})
}
