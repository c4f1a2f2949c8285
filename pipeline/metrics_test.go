// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poinet/pipeline"
)

func TestMetrics_Record(t *testing.T) {
	m := pipeline.NewMetrics()

	m.RecordSearch("1", 2*time.Millisecond)
	m.RecordSearch("3", 3*time.Millisecond)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ShortestPathRuns))

	m.RecordGraph(10, 24)
	assert.Equal(t, 10.0, testutil.ToFloat64(m.GraphVertices))
	assert.Equal(t, 24.0, testutil.ToFloat64(m.GraphEdges))

	m.RecordPhase(pipeline.PhaseMST, time.Millisecond)
	m.RecordPhase(pipeline.PhaseRoute, time.Millisecond)
	assert.Equal(t, 2, testutil.CollectAndCount(m.PhaseDuration))

	m.RecordRun(nil)
	m.RecordRun(errors.New("boom"))
	m.RecordRun(nil)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("error")))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := pipeline.NewMetrics()
	m.RecordMST("length", 333.96)
	m.RecordRun(nil)

	path := filepath.Join(t.TempDir(), "poinet.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `poinet_mst_weight_total{weight="length"} 333.96`)
	assert.Contains(t, string(data), `poinet_runs_total{status="success"} 1`)
}
