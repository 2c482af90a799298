package valueobject

import "strings"

// RunStatus represents the processing state of a document as reported by the
// ingestion service.
type RunStatus string

// Run status constants.
const (
	RunStatusUnstart RunStatus = "UNSTART"
	RunStatusRunning RunStatus = "RUNNING"
	RunStatusCancel  RunStatus = "CANCEL"
	RunStatusDone    RunStatus = "DONE"
	RunStatusFail    RunStatus = "FAIL"
)

// validRunStatuses contains all known run statuses.
var validRunStatuses = map[RunStatus]bool{
	RunStatusUnstart: true,
	RunStatusRunning: true,
	RunStatusCancel:  true,
	RunStatusDone:    true,
	RunStatusFail:    true,
}

// legacyRunCodes maps the numeric codes older servers emit to their symbolic
// equivalents.
var legacyRunCodes = map[string]RunStatus{
	"0": RunStatusUnstart,
	"1": RunStatusRunning,
	"2": RunStatusCancel,
	"3": RunStatusDone,
	"4": RunStatusFail,
}

// ParseRunStatus normalizes a server-reported run value. Numeric legacy codes
// map to their symbolic names; anything else passes through unchanged so
// unknown states stay visible to the operator.
func ParseRunStatus(raw string) RunStatus {
	trimmed := strings.TrimSpace(raw)
	if status, ok := legacyRunCodes[trimmed]; ok {
		return status
	}
	return RunStatus(trimmed)
}

// String returns the string representation of the status.
func (s RunStatus) String() string {
	return string(s)
}

// IsValid returns true if this is a known run status.
func (s RunStatus) IsValid() bool {
	return validRunStatuses[s]
}

// NeedsParsing returns true if a document in this state should be included in
// a bulk parsing trigger. Only never-started and failed documents qualify;
// running, cancelled, and completed documents are left alone.
func (s RunStatus) NeedsParsing() bool {
	return s == RunStatusUnstart || s == RunStatusFail
}

// IsDone returns true if the document finished parsing successfully.
func (s RunStatus) IsDone() bool {
	return s == RunStatusDone
}

// AllRunStatuses returns all known run statuses.
func AllRunStatuses() []RunStatus {
	statuses := make([]RunStatus, 0, len(validRunStatuses))
	for status := range validRunStatuses {
		statuses = append(statuses, status)
	}
	return statuses
}
