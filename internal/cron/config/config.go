package cron_config

type Config struct {
	// Heartbeat check, every minute
	CronScheduleHeartbeat string `env:"CRON_SCHEDULE_HEARTBEAT" envDefault:"0 * * * * *"`
	// Provider health refresh, every five minutes
	CronScheduleProviderHealth string `env:"CRON_SCHEDULE_PROVIDER_HEALTH" envDefault:"0 */5 * * * *"`
}
