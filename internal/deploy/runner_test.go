package deploy

import (
	"errors"
	"testing"

	"github.com/microscalper/scdeploy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient records every call in order
type fakeClient struct {
	calls    []string
	messages []string
	fail     bool
}

func (f *fakeClient) result() (string, error) {
	if f.fail {
		return "boom", errors.New("git exploded")
	}
	return "ok", nil
}

func (f *fakeClient) Status() (string, error) {
	f.calls = append(f.calls, "status")
	return f.result()
}

func (f *fakeClient) StageAll() (string, error) {
	f.calls = append(f.calls, "add")
	return f.result()
}

func (f *fakeClient) Commit(message string) (string, error) {
	f.calls = append(f.calls, "commit")
	f.messages = append(f.messages, message)
	return f.result()
}

func (f *fakeClient) Push(remote, branch string) (string, error) {
	f.calls = append(f.calls, "push "+remote+" "+branch)
	return f.result()
}

func (f *fakeClient) HeadShort() (string, error) {
	return "abc1234", nil
}

func TestRunExecutesStepsInFixedOrder(t *testing.T) {
	client := &fakeClient{}
	runner := NewRunner(client, false)

	summary := runner.Run(nil)

	assert.Equal(t, []string{"status", "add", "commit", "push origin main"}, client.calls)
	require.Len(t, summary.Results, 4)
	assert.Equal(t, models.StepStatus, summary.Results[0].Kind)
	assert.Equal(t, models.StepStageAll, summary.Results[1].Kind)
	assert.Equal(t, models.StepCommit, summary.Results[2].Kind)
	assert.Equal(t, models.StepPush, summary.Results[3].Kind)
	assert.Equal(t, 0, summary.FailedCount())
	assert.Equal(t, "abc1234", summary.HeadCommit)
}

func TestRunCommitMessageIsIdenticalAcrossRuns(t *testing.T) {
	client := &fakeClient{}
	runner := NewRunner(client, false)

	runner.Run(nil)
	runner.Run(nil)

	require.Len(t, client.messages, 2)
	assert.Equal(t, CommitMessage, client.messages[0])
	assert.Equal(t, client.messages[0], client.messages[1])
}

func TestRunContinuesWhenEveryStepFails(t *testing.T) {
	client := &fakeClient{fail: true}
	runner := NewRunner(client, false)

	summary := runner.Run(nil)

	// Every step still executed exactly once, in order
	assert.Equal(t, []string{"status", "add", "commit", "push origin main"}, client.calls)
	require.Len(t, summary.Results, 4)
	assert.Equal(t, 4, summary.FailedCount())
	for _, result := range summary.Results {
		assert.True(t, result.Failed)
		assert.Equal(t, "git exploded", result.Err)
		assert.Equal(t, "boom", result.Output)
	}
}

func TestRunEmitsStartedAndFinishedEvents(t *testing.T) {
	client := &fakeClient{}
	runner := NewRunner(client, false)

	var events []Event
	runner.Run(func(e Event) {
		events = append(events, e)
	})

	require.Len(t, events, 8)
	for i, kind := range runner.Steps() {
		started := events[i*2]
		finished := events[i*2+1]

		assert.Equal(t, i, started.Step)
		assert.Equal(t, kind, started.Kind)
		assert.Nil(t, started.Result)

		assert.Equal(t, i, finished.Step)
		require.NotNil(t, finished.Result)
		assert.Equal(t, kind, finished.Result.Kind)
	}
}

func TestDryRunClientSimulatesSequence(t *testing.T) {
	runner := NewRunner(DryRunClient{}, true)

	summary := runner.Run(nil)

	assert.Equal(t, 0, summary.FailedCount())
	assert.True(t, summary.DryRun)
	assert.Equal(t, "abc1234", summary.HeadCommit)
	assert.Contains(t, summary.Results[2].Output, commitSubjectForTest())
}

func commitSubjectForTest() string {
	return firstLine(CommitMessage)
}
