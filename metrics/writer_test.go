package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "analyses")
	w, err := NewWriter(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "analyses.csv"), w.Path())

	record := AnalysisMetric{
		Side:       1,
		Goroutines: 8,
		StartTime:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Duration:   1500 * time.Millisecond,
		Searches:   6,
		Cells:      40,
		Threats:    3,
		Captures:   2,
	}
	require.NoError(t, w.WriteAnalysisRecords([]AnalysisMetric{record}))
	require.NoError(t, w.WriteAnalysisRecords([]AnalysisMetric{record}))

	data, err := os.ReadFile(w.Path())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Equal(t, []string{
		"side,goroutines,start_time,duration,searches,cells,threats,captures",
		"1,8,2024-05-01T12:00:00Z,1.5s,6,40,3,2",
		"1,8,2024-05-01T12:00:00Z,1.5s,6,40,3,2",
	}, lines, "The header is written once")
}
