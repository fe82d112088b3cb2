package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"warsoracle/config"
	"warsoracle/snapshot"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	require.NoError(t, config.Load(dir))
	config.Set("metrics.enabled", true)
	config.Set("metrics.dir", filepath.Join(dir, "analyses"))

	files := snapshot.Files{
		MapPath: writeInput(t, dir, "map.json", `[
			[{"type": "plain"}, {"type": "plain"}, {"type": "plain"}, {"type": "city", "player": -1}]
		]`),
		UnitsPath: writeInput(t, dir, "units.json", `[
			{"id": 1, "type": "infantry", "position": {"x": 2, "y": 0}, "playerSlot": 0, "stats": {"hp": 100}},
			{"id": 2, "type": "tank", "position": {"x": 0, "y": 0}, "playerSlot": 1, "stats": {"hp": 100}}
		]`),
	}

	report, err := run(files, 0)
	require.NoError(t, err)
	require.Len(t, report.Threats, 1)
	require.Equal(t, "2", report.Threats[0].Attacker.ID)
	require.Equal(t, 67.5, report.Threats[0].Damage, "Standard tank on infantry, one star of plain cover")
	require.Len(t, report.Captures, 1)

	_, err = os.Stat(filepath.Join(dir, "analyses", "analyses.csv"))
	require.NoError(t, err, "Metrics are stored when enabled")

	var buf bytes.Buffer
	require.NoError(t, write(&buf, report, "json"))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Contains(t, decoded, "threats")
	require.Contains(t, decoded, "captures")

	buf.Reset()
	require.NoError(t, write(&buf, report, "csv"))
	require.True(t, strings.HasPrefix(buf.String(), "attacker_id,"))

	require.Error(t, write(&buf, report, "yaml"))
}

func TestRunRejectsBadSnapshot(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	require.NoError(t, config.Load(dir))

	files := snapshot.Files{
		MapPath:   writeInput(t, dir, "map.json", `[[{"type": "plain"}]]`),
		UnitsPath: writeInput(t, dir, "units.json", `[{"id": 1, "type": "tank", "position": {"x": 4, "y": 0}, "playerSlot": 0}]`),
	}
	_, err := run(files, 0)
	require.Error(t, err)
}
