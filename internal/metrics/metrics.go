package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	importRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm",
		Subsystem: "lead_import",
		Name:      "runs_total",
		Help:      "Total number of bulk lead imports broken down by source and outcome.",
	}, []string{"source", "outcome"})

	importLeads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm",
		Subsystem: "lead_import",
		Name:      "leads_total",
		Help:      "Total number of leads seen by bulk imports broken down by result.",
	}, []string{"result"})

	importAssigneesAdded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crm",
		Subsystem: "lead_import",
		Name:      "assignees_added_total",
		Help:      "Total number of campaign assignments created by bulk imports.",
	})

	importDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "crm",
		Subsystem: "lead_import",
		Name:      "duration_seconds",
		Help:      "Bulk lead import latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source"})

	auditFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crm",
		Subsystem: "lead_import",
		Name:      "audit_failures_total",
		Help:      "Total number of assignee-lead audit records that could not be written after a lead insert.",
	})
)

// Import sources
const (
	SourceJSON        = "json"
	SourceSpreadsheet = "spreadsheet"
)

// Lead results
const (
	ResultInserted  = "inserted"
	ResultDuplicate = "duplicate"
	ResultFailed    = "failed"
)

// ImportOutcome summarises a finished import for RecordImport
type ImportOutcome struct {
	Source         string
	Inserted       int
	Duplicates     int
	Failed         int
	AssigneesAdded int
	NoAssignees    bool
	Duration       time.Duration
}

// RecordImport publishes the counters of one finished import
func RecordImport(o ImportOutcome) {
	source := o.Source
	if source == "" {
		source = SourceJSON
	}

	outcome := "completed"
	switch {
	case o.NoAssignees:
		outcome = "no_assignees"
	case o.Inserted == 0 && (o.Duplicates > 0 || o.Failed > 0):
		outcome = "nothing_inserted"
	}
	importRuns.WithLabelValues(source, outcome).Inc()

	importLeads.WithLabelValues(ResultInserted).Add(float64(o.Inserted))
	importLeads.WithLabelValues(ResultDuplicate).Add(float64(o.Duplicates))
	importLeads.WithLabelValues(ResultFailed).Add(float64(o.Failed))
	importAssigneesAdded.Add(float64(o.AssigneesAdded))
	importDuration.WithLabelValues(source).Observe(o.Duration.Seconds())
}

// RecordAuditFailure counts an audit record that was dropped after its lead was created
func RecordAuditFailure() {
	auditFailures.Inc()
}
