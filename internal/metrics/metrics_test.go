package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestRecordImport_PublishesRunAndLeadCounters(t *testing.T) {
	before := counterValue(t, "crm_lead_import_leads_total", map[string]string{"result": ResultDuplicate})

	RecordImport(ImportOutcome{
		Source:         SourceSpreadsheet,
		Inserted:       2,
		Duplicates:     1,
		AssigneesAdded: 2,
		Duration:       15 * time.Millisecond,
	})

	require.GreaterOrEqual(t, counterValue(t, "crm_lead_import_runs_total", map[string]string{"source": SourceSpreadsheet, "outcome": "completed"}), float64(1))
	require.Equal(t, before+1, counterValue(t, "crm_lead_import_leads_total", map[string]string{"result": ResultDuplicate}))
}

func TestRecordImport_NoAssigneesOutcome(t *testing.T) {
	RecordImport(ImportOutcome{Failed: 3, NoAssignees: true})

	require.GreaterOrEqual(t, counterValue(t, "crm_lead_import_runs_total", map[string]string{"source": SourceJSON, "outcome": "no_assignees"}), float64(1))
}

func TestRecordAuditFailure(t *testing.T) {
	before := counterValue(t, "crm_lead_import_audit_failures_total", nil)
	RecordAuditFailure()
	require.Equal(t, before+1, counterValue(t, "crm_lead_import_audit_failures_total", nil))
}

// counterValue returns the value of the counter matching all labels, or 0 when it has not been created yet
func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()

	mfs, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if matches(m, labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func matches(m *dto.Metric, labels map[string]string) bool {
	got := map[string]string{}
	for _, lp := range m.GetLabel() {
		got[lp.GetName()] = lp.GetValue()
	}
	for k, v := range labels {
		if got[k] != v {
			return false
		}
	}
	return true
}
