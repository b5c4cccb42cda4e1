package models

import (
	"time"

	"github.com/customeros/trustwatch/internal/enum"
)

type ProviderStatus struct {
	Provider    enum.Provider `json:"provider"`
	Configured  bool          `json:"configured"`
	Reachable   bool          `json:"reachable"`
	LatencyMs   int64         `json:"latencyMs"`
	LastChecked time.Time     `json:"lastChecked"`
}
