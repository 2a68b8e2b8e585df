package services

import (
	"context"
)

// stubGenerator is a canned TextGenerator. Responses are served in order,
// repeating the last one when calls outnumber entries.
type stubGenerator struct {
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)

	if s.err != nil {
		return "", s.err
	}

	if len(s.responses) == 0 {
		return "", nil
	}

	idx := s.calls - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx], nil
}

func (s *stubGenerator) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return s.GenerateText(ctx, prompt, temperature)
}

func (s *stubGenerator) lastPrompt() string {
	if len(s.prompts) == 0 {
		return ""
	}
	return s.prompts[len(s.prompts)-1]
}

// stubArchive is a canned ArchiveService for manager tests.
type stubArchive struct {
	resourceContext string
	err             error
	retrieveCalls   int
}

func (s *stubArchive) InitCollection() error { return nil }

func (s *stubArchive) UpsertResource(ctx context.Context, resourceID, track, text string, embedding []float32) error {
	return nil
}

func (s *stubArchive) SearchResources(ctx context.Context, queryEmbedding []float32, track string, limit int) ([]ResourceResult, error) {
	return nil, nil
}

func (s *stubArchive) RetrieveTaskResources(ctx context.Context, taskBrief, track string, limit int) (string, error) {
	s.retrieveCalls++
	if s.err != nil {
		return "", s.err
	}
	return s.resourceContext, nil
}
