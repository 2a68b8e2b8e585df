package models

// AgentName identifies one of the office's AI colleagues.
type AgentName string

const (
	AgentTolu        AgentName = "Tolu"
	AgentEmem        AgentName = "Emem"
	AgentSola        AgentName = "Sola"
	AgentKemi        AgentName = "Kemi"
	AgentRecommender AgentName = "Recommender"
)

// UserLevel is the skill tier assigned at onboarding.
type UserLevel string

const (
	LevelZero UserLevel = "Level 0"
	LevelOne  UserLevel = "Level 1"
	LevelTwo  UserLevel = "Level 2"
)

// ResolutionMethod records which stage of the routing chain picked the agent.
type ResolutionMethod string

const (
	ResolvedDeterministic ResolutionMethod = "deterministic"
	ResolvedAIClassifier  ResolutionMethod = "ai_classifier"
	ResolvedKeywords      ResolutionMethod = "keyword_fallback"
)

// ChatContext carries the session state the orchestrator routes on and the
// agents answer with.
type ChatContext struct {
	TaskID             string `json:"task_id,omitempty"`
	IsSubmission       bool   `json:"is_submission,omitempty"`
	IsFirstLogin       bool   `json:"is_first_login,omitempty"`
	UserLevel          string `json:"user_level,omitempty"`
	Track              string `json:"track,omitempty"`
	TaskBrief          string `json:"task_brief,omitempty"`
	Deadline           string `json:"deadline,omitempty"`
	CVText             string `json:"cv_text,omitempty"`
	PerformanceSummary string `json:"performance_summary,omitempty"`
}

// ConversationTurn is one prior exchange in the chat history.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ClassificationOutcome is the routing decision plus how it was reached.
type ClassificationOutcome struct {
	Agent     AgentName        `json:"agent"`
	Method    ResolutionMethod `json:"method"`
	RawAnswer string           `json:"raw_answer,omitempty"`
}
