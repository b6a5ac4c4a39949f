package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIncrementContactSubmission(t *testing.T) {
	before := testutil.ToFloat64(ContactSubmissions.WithLabelValues(OutcomeInvalid))
	IncrementContactSubmission(OutcomeInvalid)
	after := testutil.ToFloat64(ContactSubmissions.WithLabelValues(OutcomeInvalid))

	if after-before != 1 {
		t.Errorf("counter delta = %v, want 1", after-before)
	}
}

func TestRecordDispatch(t *testing.T) {
	RecordDispatch("resend", true, 20*time.Millisecond)
	RecordDispatch("resend", false, 5*time.Millisecond)

	if n := testutil.CollectAndCount(EmailDispatchDuration); n < 2 {
		t.Errorf("expected at least 2 series, got %d", n)
	}
}
