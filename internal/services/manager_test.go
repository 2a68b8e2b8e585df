package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wdclabs/ai-office/internal/models"
)

func TestExpectationByLevel(t *testing.T) {
	assert.Contains(t, expectationByLevel(string(models.LevelZero)), "ramping up")
	assert.Contains(t, expectationByLevel(string(models.LevelTwo)), "ownership")
	assert.Contains(t, expectationByLevel(string(models.LevelOne)), "standard intern expectations")
	// Unknown levels get the middle-tier guidance.
	assert.Contains(t, expectationByLevel("Level 9"), "standard intern expectations")
}

func TestAssignTaskIncludesArchiveResources(t *testing.T) {
	gen := &stubGenerator{responses: []string{"Here's your next task."}}
	archive := &stubArchive{resourceContext: "--- Resource 1 ---\nSQL style guide excerpt"}
	m := NewManagerService(gen, archive, 3)

	message, err := m.AssignTask(context.Background(),
		"Weekly report", "Build the weekly sales report", "", "Data Analytics", "")

	require.NoError(t, err)
	assert.Equal(t, "Here's your next task.", message)
	assert.Equal(t, 1, archive.retrieveCalls)
	assert.Contains(t, gen.lastPrompt(), "SQL style guide excerpt")
}

func TestAssignTaskSurvivesArchiveFailure(t *testing.T) {
	gen := &stubGenerator{responses: []string{"Here's your next task."}}
	archive := &stubArchive{err: errors.New("qdrant unreachable")}
	m := NewManagerService(gen, archive, 3)

	message, err := m.AssignTask(context.Background(),
		"Weekly report", "Build the weekly sales report", "", "Data Analytics", "")

	require.NoError(t, err)
	assert.Equal(t, "Here's your next task.", message)
}

func TestAssignTaskWorksWithoutArchive(t *testing.T) {
	gen := &stubGenerator{responses: []string{"Task assigned."}}
	m := NewManagerService(gen, nil, 3)

	message, err := m.AssignTask(context.Background(),
		"Weekly report", "Build the weekly sales report", "", "", "")

	require.NoError(t, err)
	assert.Equal(t, "Task assigned.", message)
}

func TestAssignTaskEmptyDeadlineNotLabelled(t *testing.T) {
	gen := &stubGenerator{responses: []string{"Task assigned."}}
	m := NewManagerService(gen, nil, 3)

	_, err := m.AssignTask(context.Background(),
		"Weekly report", "Build the weekly sales report", "", "", "")

	require.NoError(t, err)
	// An absent deadline must not be rendered as the parse fallback.
	assert.NotContains(t, gen.lastPrompt(), "In 1 day")
}

func TestGenerateClientInterruptionKnownTypes(t *testing.T) {
	for interruptionType, fragment := range map[string]string{
		"scope_change":     "change the scope",
		"constraint_added": "compliance issue",
		"urgent_pivot":     "Drop everything",
		"data_correction":  "data we sent was wrong",
	} {
		gen := &stubGenerator{responses: []string{"Quick update from the client..."}}
		m := NewManagerService(gen, nil, 3)

		message, err := m.GenerateClientInterruption(context.Background(),
			"Build the dashboard", interruptionType)

		require.NoError(t, err, interruptionType)
		assert.Equal(t, "Quick update from the client...", message)
		assert.Contains(t, gen.lastPrompt(), fragment, interruptionType)
	}
}

func TestGenerateClientInterruptionUnknownTypeDefaultsToScopeChange(t *testing.T) {
	gen := &stubGenerator{responses: []string{"Quick update..."}}
	m := NewManagerService(gen, nil, 3)

	_, err := m.GenerateClientInterruption(context.Background(),
		"Build the dashboard", "alien_invasion")

	require.NoError(t, err)
	assert.Contains(t, gen.lastPrompt(), "change the scope")
}
