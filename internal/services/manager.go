package services

import (
	"context"
	"fmt"
	"log"

	"wdclabs/ai-office/internal/models"
)

// ManagerService is Emem, the Project Manager.
type ManagerService interface {
	AssignTask(ctx context.Context, taskTitle, taskBrief, deadline, track, clientConstraints string) (string, error)
	GenerateClientInterruption(ctx context.Context, currentTask, interruptionType string) (string, error)
	RespondToMessage(ctx context.Context, message string, chatCtx models.ChatContext, history []models.ConversationTurn) (string, error)
}

type managerService struct {
	generator  TextGenerator
	archive    ArchiveService
	prompts    *PromptBuilder
	maxRetries int
}

func NewManagerService(generator TextGenerator, archive ArchiveService, maxRetries int) ManagerService {
	return &managerService{
		generator:  generator,
		archive:    archive,
		prompts:    NewPromptBuilder(),
		maxRetries: maxRetries,
	}
}

// interruptionSituations seed the "Moving Target" messages that simulate
// mid-task workplace chaos.
var interruptionSituations = map[string]string{
	"scope_change":     "The client just emailed asking to change the scope of the project.",
	"constraint_added": "Legal just flagged a compliance issue. We need to add constraints.",
	"urgent_pivot":     "Drop everything. The client needs something else urgently.",
	"data_correction":  "The data we sent was wrong. The user needs to redo part of the work.",
}

// expectationByLevel returns the guidance Emem applies when addressing an
// intern of the given level.
func expectationByLevel(level string) string {
	switch level {
	case string(models.LevelZero):
		return "This intern is still ramping up. Be explicit about what is required. " +
			"Do not assume prior experience. Set clear, achievable expectations."
	case string(models.LevelTwo):
		return "This intern has demonstrated strong capability. " +
			"Expect ownership, initiative, and minimal hand-holding."
	default:
		return "This intern has some experience but may still need guidance. " +
			"Set standard intern expectations and monitor progress."
	}
}

// AssignTask implements ManagerService. Reference material for the task is
// pulled from the track archive when available; retrieval failures only cost
// the enrichment, never the assignment.
func (m *managerService) AssignTask(ctx context.Context, taskTitle, taskBrief, deadline, track, clientConstraints string) (string, error) {
	resourceContext := ""
	if m.archive != nil {
		retrieved, err := m.archive.RetrieveTaskResources(ctx, taskBrief, track, 3)
		if err != nil {
			log.Printf("⚠️  Failed to retrieve task resources: %v\n", err)
		} else {
			resourceContext = retrieved
		}
	}

	deadlineLabel := ""
	if deadline != "" {
		deadlineLabel = FormatDeadlineDisplay(deadline)
	}

	prompt := m.prompts.BuildTaskAssignmentPrompt(
		taskTitle, taskBrief, deadlineLabel, clientConstraints, resourceContext,
	)

	response, err := m.generator.GenerateTextWithRetry(ctx, prompt, 0.7, m.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate task assignment: %w", err)
	}

	return response, nil
}

// GenerateClientInterruption implements ManagerService. Unknown interruption
// types fall back to a scope change.
func (m *managerService) GenerateClientInterruption(ctx context.Context, currentTask, interruptionType string) (string, error) {
	situation, ok := interruptionSituations[interruptionType]
	if !ok {
		situation = interruptionSituations["scope_change"]
	}

	prompt := m.prompts.BuildInterruptionPrompt(currentTask, situation)

	response, err := m.generator.GenerateTextWithRetry(ctx, prompt, 0.8, m.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate client interruption: %w", err)
	}

	return response, nil
}

// RespondToMessage implements ManagerService.
func (m *managerService) RespondToMessage(ctx context.Context, message string, chatCtx models.ChatContext, history []models.ConversationTurn) (string, error) {
	level := chatCtx.UserLevel
	if level == "" {
		level = string(models.LevelOne)
	}

	deadlineLabel := ""
	if chatCtx.Deadline != "" {
		deadlineLabel = FormatDeadlineDisplay(chatCtx.Deadline)
	}

	prompt := m.prompts.BuildEmemChatPrompt(message, chatCtx, history, expectationByLevel(level), deadlineLabel)

	response, err := m.generator.GenerateTextWithRetry(ctx, prompt, 0.7, m.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	return response, nil
}
