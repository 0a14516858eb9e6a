package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// QualityTier is the overall verdict for a test run.
type QualityTier string

const (
	QualityUnknown   QualityTier = "Unknown"
	QualityExcellent QualityTier = "Excellent"
	QualityGood      QualityTier = "Good"
	QualityFair      QualityTier = "Fair"
	QualityPoor      QualityTier = "Poor"
)

// TestKind discriminates the detail payload of a TestRecord.
type TestKind string

const (
	TestKindResolution  TestKind = "resolution"
	TestKindRefreshRate TestKind = "refreshRate"
	TestKindBandwidth   TestKind = "bandwidth"
	TestKindStability   TestKind = "stability"
)

// Display names of the individual tests as they appear in reports.
const (
	TestNameResolution  = "Resolution Support Test"
	TestNameRefreshRate = "Refresh Rate Test"
	TestNameBandwidth   = "Bandwidth Analysis"
	TestNameStability   = "Signal Stability Test"
)

// TestDetails is the per-kind payload of a TestRecord. Exactly one concrete
// type exists per TestKind.
type TestDetails interface {
	Kind() TestKind
}

// ResolutionResult is the outcome of probing one standard resolution against
// the available mode catalog. AvailableRefreshRates is only populated when the
// resolution is supported.
type ResolutionResult struct {
	ResolutionLabel       string `json:"resolutionLabel"`
	Supported             bool   `json:"supported"`
	AvailableRefreshRates []int  `json:"availableRefreshRates,omitempty"`
}

// ResolutionDetails carries the per-probe results of the resolution test.
type ResolutionDetails struct {
	ResolutionsTested []ResolutionResult `json:"resolutionsTested"`
}

func (ResolutionDetails) Kind() TestKind { return TestKindResolution }

// RefreshRateResult is the outcome of probing one refresh rate.
type RefreshRateResult struct {
	RefreshRateHz int  `json:"refreshRateHz"`
	Supported     bool `json:"supported"`
}

// RefreshRateDetails carries the per-probe results of the refresh rate test.
type RefreshRateDetails struct {
	RefreshRatesTested []RefreshRateResult `json:"refreshRatesTested"`
}

func (RefreshRateDetails) Kind() TestKind { return TestKindRefreshRate }

// BandwidthResult is the computed requirement of one scenario plus the HDMI
// revisions able to carry it, in catalog order.
type BandwidthResult struct {
	Scenario            string   `json:"scenario"`
	BandwidthGbps       float64  `json:"bandwidthGbps"`
	CompatibleRevisions []string `json:"compatibleRevisions"`
}

// BandwidthDetails carries the results of the bandwidth analysis.
type BandwidthDetails struct {
	BandwidthTests []BandwidthResult `json:"bandwidthTests"`
}

func (BandwidthDetails) Kind() TestKind { return TestKindBandwidth }

// StabilitySample is a single one-second observation of the connected display
// count. A failed poll yields an error sample with no count and no stable
// flag, which is why both are pointers.
type StabilitySample struct {
	TimeIndex         int    `json:"timeIndex"`
	DisplaysConnected *int   `json:"displaysConnected,omitempty"`
	Stable            *bool  `json:"stable,omitempty"`
	Error             string `json:"error,omitempty"`
}

// ConnectedSample builds a successful sample for the given 1-based tick.
func ConnectedSample(timeIndex, displaysConnected int) StabilitySample {
	stable := displaysConnected > 0
	return StabilitySample{
		TimeIndex:         timeIndex,
		DisplaysConnected: &displaysConnected,
		Stable:            &stable,
	}
}

// ErrorSample builds a sample recording a failed poll.
func ErrorSample(timeIndex int, err error) StabilitySample {
	return StabilitySample{TimeIndex: timeIndex, Error: err.Error()}
}

// IsStable reports whether the sample observed at least one connected display.
// Error samples are not stable observations but do not count as instability.
func (s StabilitySample) IsStable() bool {
	return s.Stable != nil && *s.Stable
}

// StabilityDetails carries the timed sampling results.
type StabilityDetails struct {
	DurationSeconds int               `json:"durationSeconds"`
	Samples         []StabilitySample `json:"samples"`
}

func (StabilityDetails) Kind() TestKind { return TestKindStability }

// TestRecord is the envelope appended to the result aggregate once per test.
// Records are never mutated after they are appended.
type TestRecord struct {
	TestName  string      `json:"testName"`
	Timestamp time.Time   `json:"timestamp"`
	Passed    bool        `json:"passed"`
	Kind      TestKind    `json:"kind"`
	Details   TestDetails `json:"details"`
}

// NewTestRecord stamps a record with the current time. The kind is derived
// from the details payload.
func NewTestRecord(testName string, passed bool, details TestDetails) TestRecord {
	return TestRecord{
		TestName:  testName,
		Timestamp: time.Now(),
		Passed:    passed,
		Kind:      details.Kind(),
		Details:   details,
	}
}

// testRecordEnvelope mirrors TestRecord with raw details, used to decode the
// tagged variant.
type testRecordEnvelope struct {
	TestName  string          `json:"testName"`
	Timestamp time.Time       `json:"timestamp"`
	Passed    bool            `json:"passed"`
	Kind      TestKind        `json:"kind"`
	Details   json.RawMessage `json:"details"`
}

// UnmarshalJSON decodes the envelope and dispatches the details payload to the
// concrete type selected by the kind tag.
func (r *TestRecord) UnmarshalJSON(data []byte) error {
	var env testRecordEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	r.TestName = env.TestName
	r.Timestamp = env.Timestamp
	r.Passed = env.Passed
	r.Kind = env.Kind

	if len(env.Details) == 0 {
		r.Details = nil
		return nil
	}

	var details TestDetails
	switch env.Kind {
	case TestKindResolution:
		details = &ResolutionDetails{}
	case TestKindRefreshRate:
		details = &RefreshRateDetails{}
	case TestKindBandwidth:
		details = &BandwidthDetails{}
	case TestKindStability:
		details = &StabilityDetails{}
	default:
		return fmt.Errorf("unknown test kind %q", env.Kind)
	}
	if err := json.Unmarshal(env.Details, details); err != nil {
		return fmt.Errorf("decode %s details: %w", env.Kind, err)
	}

	switch d := details.(type) {
	case *ResolutionDetails:
		r.Details = *d
	case *RefreshRateDetails:
		r.Details = *d
	case *BandwidthDetails:
		r.Details = *d
	case *StabilityDetails:
		r.Details = *d
	}
	return nil
}

// ResultAggregate accumulates everything one run produces. It is created at
// run start, threaded through each test explicitly, and handed by value to
// rendering and persistence once finalized. There is no global instance.
type ResultAggregate struct {
	Timestamp      time.Time         `json:"Timestamp"`
	Platform       string            `json:"Platform"`
	OSVersion      string            `json:"OSVersion"`
	Displays       []DisplayIdentity `json:"Displays"`
	Tests          []TestRecord      `json:"Tests"`
	OverallQuality QualityTier       `json:"OverallQuality"`
	Warnings       []string          `json:"Warnings,omitempty"`
}

// NewResultAggregate starts an empty aggregate for the given host.
func NewResultAggregate(platform, osVersion string) *ResultAggregate {
	return &ResultAggregate{
		Timestamp:      time.Now(),
		Platform:       platform,
		OSVersion:      osVersion,
		Displays:       []DisplayIdentity{},
		Tests:          []TestRecord{},
		OverallQuality: QualityUnknown,
	}
}

// SetDisplays records the detected display snapshot.
func (a *ResultAggregate) SetDisplays(displays []DisplayIdentity) {
	a.Displays = displays
}

// AppendTest adds a finished test record. Appended records are read-only from
// this point on.
func (a *ResultAggregate) AppendTest(record TestRecord) {
	a.Tests = append(a.Tests, record)
}

// AddWarning attaches a non-fatal note, such as a degraded collaborator.
func (a *ResultAggregate) AddWarning(msg string) {
	a.Warnings = append(a.Warnings, msg)
}
