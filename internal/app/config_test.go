package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
[server]
port = ":8080"

[sheet]
spreadsheet_id = "sheet123"
submissions_gid = "111"
challenges_gid = "222"
`

func TestParseConfig_Defaults(t *testing.T) {
	config, err := ParseConfig([]byte(minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, ":8080", config.Server.Port)
	assert.Equal(t, 10*time.Second, config.Sources.Timeout.Duration)
	assert.Equal(t, 60*time.Second, config.Cache.TTL.Duration)
	assert.Equal(t, "ironclad", config.Cache.KeyPrefix)
	assert.Equal(t, "* * * * *", config.Refresh.Schedule)
	assert.Equal(t, 10, config.Bot.TopSize)
	assert.Equal(t, 100.0, config.Scoring.MileageGoal)
	assert.Equal(t, 10, config.Scoring.MileageBonus)

	assert.False(t, config.UseSheetsAPI())
	assert.False(t, config.HasMileage())
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/sheet123/export?format=csv&gid=111",
		config.SubmissionsURL(),
	)
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/sheet123/export?format=csv&gid=222",
		config.ChallengesURL(),
	)
}

func TestParseConfig_Overrides(t *testing.T) {
	config, err := ParseConfig([]byte(minimalConfig + `
mileage_gid = "333"
form_url = "https://docs.google.com/forms/d/e/abc/viewform"

[sources]
challenges_csv_url = "https://example.com/challenges.csv"
timeout = "3s"

[cache]
redis_url = "redis://localhost:6379/0"
ttl = "90s"

[scoring]
mileage_goal = 50.5
mileage_bonus = 5
`))
	require.NoError(t, err)

	assert.True(t, config.HasMileage())
	assert.Equal(t, "https://example.com/challenges.csv", config.ChallengesURL())
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/sheet123/export?format=csv&gid=333",
		config.MileageURL(),
	)
	assert.Equal(t, 3*time.Second, config.Sources.Timeout.Duration)
	assert.Equal(t, 90*time.Second, config.Cache.TTL.Duration)
	assert.Equal(t, 50.5, config.Scoring.MileageGoal)
	assert.Equal(t, 5, config.Scoring.MileageBonus)
}

func TestParseConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		config string
	}{
		{
			name:   "Missing port",
			config: "[sheet]\nspreadsheet_id = \"x\"\nsubmissions_gid = \"1\"\nchallenges_gid = \"2\"\n",
		},
		{
			name:   "Missing spreadsheet",
			config: "[server]\nport = \":8080\"\n",
		},
		{
			name:   "Bad duration",
			config: minimalConfig + "\n[sources]\ntimeout = \"soon\"\n",
		},
		{
			name:   "Bad form url",
			config: minimalConfig + "form_url = \"not a url\"\n",
		},
		{
			name:   "Non-positive goal",
			config: minimalConfig + "\n[scoring]\nmileage_goal = 0\n",
		},
		{
			name:   "Not toml",
			config: "port = = 1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tc.config))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(minimalConfig), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sheet123", config.Sheet.SpreadsheetID)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
