package deploy

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleRunPrintsEveryStepOnce(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("\n"), &out)

	client := &fakeClient{}
	summary := console.Run(NewRunner(client, false))

	text := out.String()
	assert.Equal(t, 1, strings.Count(text, StartBanner))
	for i := 1; i <= 4; i++ {
		assert.Equal(t, 1, strings.Count(text, fmt.Sprintf("[%d/4]", i)))
	}
	assert.Equal(t, 1, strings.Count(text, "git status"))
	assert.Equal(t, 1, strings.Count(text, "git add --all"))
	assert.Equal(t, 1, strings.Count(text, "git commit"))
	assert.Equal(t, 1, strings.Count(text, "git push origin main"))
	assert.Equal(t, 1, strings.Count(text, SuccessMessage))
	assert.Equal(t, 1, strings.Count(text, DashboardURL))
	assert.Contains(t, text, "Press Enter to exit")
	assert.Equal(t, 0, summary.FailedCount())
}

func TestConsoleRunStillReportsSuccessOnFailure(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("\n"), &out)

	client := &fakeClient{fail: true}
	summary := console.Run(NewRunner(client, false))

	// The closing banner is unconditional; only the step results differ
	text := out.String()
	assert.Equal(t, 1, strings.Count(text, SuccessMessage))
	assert.Equal(t, 1, strings.Count(text, DashboardURL))
	assert.Equal(t, 4, strings.Count(text, "(command failed, continuing)"))
	assert.Equal(t, 4, summary.FailedCount())
}

func TestConsoleRunReturnsEvenWithoutInput(t *testing.T) {
	// An exhausted reader (EOF) must not hang the final keypress wait
	var out bytes.Buffer
	console := NewConsole(strings.NewReader(""), &out)

	console.Run(NewRunner(&fakeClient{}, false))

	assert.Contains(t, out.String(), SuccessMessage)
}
