package entity

import "time"

// StoredReport is one persisted test run in report history. The summary
// columns are denormalized from the embedded aggregate so history listings
// never have to decode the full report JSON.
type StoredReport struct {
	ID             int64           `json:"id"`
	Fingerprint    string          `json:"fingerprint"`
	CreatedAt      time.Time       `json:"created_at"`
	Platform       string          `json:"platform"`
	OSVersion      string          `json:"os_version"`
	DisplayCount   int             `json:"display_count"`
	TestCount      int             `json:"test_count"`
	OverallQuality QualityTier     `json:"overall_quality"`
	Report         ResultAggregate `json:"report"`
}

// NewStoredReport wraps a finalized aggregate for persistence.
func NewStoredReport(report ResultAggregate, fingerprint string) *StoredReport {
	return &StoredReport{
		Fingerprint:    fingerprint,
		CreatedAt:      time.Now(),
		Platform:       report.Platform,
		OSVersion:      report.OSVersion,
		DisplayCount:   len(report.Displays),
		TestCount:      len(report.Tests),
		OverallQuality: report.OverallQuality,
		Report:         report,
	}
}

// HistoryStats summarizes stored report history.
type HistoryStats struct {
	TotalReports int64     `json:"total_reports"`
	FirstRun     time.Time `json:"first_run"`
	LastRun      time.Time `json:"last_run"`
}
