package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRuleFired(t *testing.T) {
	c := singleton().rulesFired.WithLabelValues("hard_mismatch")
	before := testutil.ToFloat64(c)
	RuleFired("hard_mismatch")
	RuleFired("hard_mismatch")
	assert.Equal(t, before+2, testutil.ToFloat64(c))
}

func TestActionMutation_ResultLabel(t *testing.T) {
	ok := singleton().actionMutations.WithLabelValues("update", "ok")
	failed := singleton().actionMutations.WithLabelValues("update", "error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	ActionMutation("update", nil)
	ActionMutation("update", errors.New("x"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "2xx", statusLabel(204))
	assert.Equal(t, "3xx", statusLabel(304))
	assert.Equal(t, "4xx", statusLabel(404))
	assert.Equal(t, "5xx", statusLabel(503))
}
