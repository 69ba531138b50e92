package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/ironclad/internal/app"
)

type countingSource struct {
	name  string
	rows  [][]string
	err   error
	calls atomic.Int32
}

func (s *countingSource) Name() string {
	return s.name
}

func (s *countingSource) Rows(ctx context.Context) ([][]string, error) {
	s.calls.Add(1)
	return s.rows, s.err
}

func newService(t *testing.T, schedule string, sources *app.Sources) *app.Service {
	config, err := app.ParseConfig([]byte(`
[server]
port = ":8080"

[sheet]
spreadsheet_id = "sheet123"
submissions_gid = "111"
challenges_gid = "222"

[refresh]
schedule = "` + schedule + `"
`))
	require.NoError(t, err)
	return app.NewServiceWithSources(config, sources)
}

func TestRefresher_RunOnce(t *testing.T) {
	submissions := &countingSource{name: "submissions", rows: [][]string{
		{"Timestamp", "Name", "Challenge"},
		{"1/1/2026", "Alice", "Pushups"},
	}}
	challenges := &countingSource{name: "challenges", rows: [][]string{
		{"Section", "Activity", "Points"},
		{"Standard", "Pushups", "20"},
	}}

	r, err := New(newService(t, "*/5 * * * *", &app.Sources{Submissions: submissions, Challenges: challenges}))
	require.NoError(t, err)

	require.NoError(t, r.RunOnce(context.Background()))
	assert.Equal(t, int32(1), submissions.calls.Load())
	assert.Equal(t, int32(1), challenges.calls.Load())
}

func TestRefresher_RunOnceFailure(t *testing.T) {
	r, err := New(newService(t, "* * * * *", &app.Sources{
		Submissions: &countingSource{name: "submissions", err: errors.New("timeout")},
		Challenges:  &countingSource{name: "challenges"},
	}))
	require.NoError(t, err)

	assert.Error(t, r.RunOnce(context.Background()))
}

func TestRefresher_BadSchedule(t *testing.T) {
	_, err := New(newService(t, "every tuesday", &app.Sources{}))
	assert.Error(t, err)
}
