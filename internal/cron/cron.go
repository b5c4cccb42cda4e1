package cron

import (
	"context"
	"os"
	"sync"

	"github.com/caarlos0/env/v6"
	cronv3 "github.com/robfig/cron/v3"

	"github.com/customeros/trustwatch/config"
	"github.com/customeros/trustwatch/interfaces"
	cron_config "github.com/customeros/trustwatch/internal/cron/config"
	"github.com/customeros/trustwatch/internal/logger"
	"github.com/customeros/trustwatch/internal/tracing"
)

// GroupTrustwatch is the group for trustwatch related jobs
const GroupTrustwatch = "trustwatch"

// LOCK MANAGEMENT
var jobLocks = struct {
	sync.Mutex
	locks map[string]*sync.Mutex
}{
	locks: map[string]*sync.Mutex{
		GroupTrustwatch: new(sync.Mutex),
	},
}

type CronManager struct {
	cfg     *config.Config
	log     logger.Logger
	cron    *cronv3.Cron
	stopCh  chan struct{}
	jobIDs  map[string]cronv3.EntryID
	monitor interfaces.StatusMonitor
}

func NewCronManager(cfg *config.Config, log logger.Logger, monitor interfaces.StatusMonitor) *CronManager {
	return &CronManager{
		cfg:     cfg,
		log:     log,
		stopCh:  make(chan struct{}),
		jobIDs:  make(map[string]cronv3.EntryID),
		monitor: monitor,
	}
}

// Start initializes and starts the cron manager. The service runs as a
// single instance, so there is no leader election here.
func (cm *CronManager) Start() error {
	cm.StartCron()
	return nil
}

// Stop gracefully stops the cron manager
func (cm *CronManager) Stop() {
	if cm.cron != nil {
		cm.log.Info("Stopping cron manager")
		ctx := cm.cron.Stop()
		// Wait for jobs to finish
		<-ctx.Done()
	}
	close(cm.stopCh)
}

// registerJobs adds all cron jobs to the scheduler
func (cm *CronManager) registerJobs(c *cronv3.Cron) {
	// Load cron config from environment variables
	var cronConfig cron_config.Config
	if err := env.Parse(&cronConfig); err != nil {
		cm.log.Fatalf("Failed to parse cron config from environment: %v", err)
	}

	// Register heartbeat job
	if cronConfig.CronScheduleHeartbeat != "" {
		podName := os.Getenv("POD_NAME")
		if podName == "" {
			podName = "local"
		}
		id, err := c.AddFunc(cronConfig.CronScheduleHeartbeat, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			cm.log.Infof("Cron heartbeat from pod: %s", podName)
		})
		if err != nil {
			cm.log.Fatalf("Could not add heartbeat cron job: %v", err)
		}
		cm.jobIDs["heartbeat"] = id
		cm.log.Infof("Registered heartbeat job with schedule: %s", cronConfig.CronScheduleHeartbeat)
	}

	// Register provider health refresh job
	if cronConfig.CronScheduleProviderHealth != "" && cm.monitor != nil {
		id, err := c.AddFunc(cronConfig.CronScheduleProviderHealth, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			jobLocks.locks[GroupTrustwatch].Lock()
			defer jobLocks.locks[GroupTrustwatch].Unlock()
			cm.refreshProviderHealth()
		})
		if err != nil {
			cm.log.Fatalf("Could not add provider health cron job: %v", err)
		}
		cm.jobIDs["provider_health"] = id
		cm.log.Infof("Registered provider health job with schedule: %s", cronConfig.CronScheduleProviderHealth)
	}
}

// StartCron initializes and starts the cron scheduler
func (cm *CronManager) StartCron() {
	cm.log.Info("Starting cron manager")
	// Create a new cron with seconds field enabled and panic recovery
	cronOptions := []cronv3.Option{
		cronv3.WithSeconds(),
		cronv3.WithChain(
			cronv3.SkipIfStillRunning(cronv3.DefaultLogger), // Skip if still running
			cronv3.Recover(cronv3.DefaultLogger),            // Default recovery as backup
		),
	}
	c := cronv3.New(cronOptions...)
	cm.registerJobs(c)
	c.Start()
	cm.cron = c
}

func (cm *CronManager) refreshProviderHealth() {
	cm.log.Info("Running provider health refresh")

	ctx := context.Background()

	span, ctx := tracing.StartTracerSpan(ctx, "CronManager.refreshProviderHealth")
	defer span.Finish()
	tracing.TagComponentCronJob(span)

	cm.monitor.RefreshProviders(ctx)

	reachable := 0
	snapshot := cm.monitor.Snapshot()
	for _, status := range snapshot {
		if status.Reachable {
			reachable++
		}
	}
	cm.log.Infof("Provider health refresh complete: %d/%d providers reachable", reachable, len(snapshot))
}
