package models

import "time"

// NormalizedInput is the normalizer's output. Raw keeps the submitted
// string because the threat-list lookup checks the exact URL as received,
// not the reduced domain.
type NormalizedInput struct {
	Raw      string
	Domain   string
	IsSecure bool
}

type DnsSignal struct {
	ResolvedAddress string
}

type WhoisSignal struct {
	CreatedDate  *time.Time
	AgeDays      *int
	Registrar    string
	Nameservers  []string
	DomainStatus string
}

type HttpsSignal struct {
	IsSecure  bool
	PageTitle string
}

type ThreatSignal struct {
	IsFlagged bool
}

// ReputationSignal mirrors the reputation provider's response. Reputation
// runs opposite to risk: a "high" reputation is a low-risk address.
type ReputationSignal struct {
	Email             string
	Reputation        string
	RiskScore         float64
	Suspicious        bool
	FreeProvider      bool
	Disposable        bool
	MaliciousActivity string
}

// IsBusinessDomain reports whether the address belongs to neither a free
// consumer mail service nor a disposable one.
func (r ReputationSignal) IsBusinessDomain() bool {
	return !r.FreeProvider && !r.Disposable
}
