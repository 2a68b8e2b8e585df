package models

type ChatRequest struct {
	UserID      string             `json:"user_id" validate:"required"`
	Message     string             `json:"message" validate:"required"`
	Context     ChatContext        `json:"context"`
	ChatHistory []ConversationTurn `json:"chat_history"`
}

type ChatResponse struct {
	Agent    AgentName      `json:"agent"`
	Message  string         `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
}

type BioAssessmentRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	BioText    string `json:"bio_text,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
	Track      string `json:"track" validate:"required"`
}

type BioAssessmentResponse struct {
	ResponseText  string `json:"response_text"`
	AssessedLevel string `json:"assessed_level"`
	Reasoning     string `json:"reasoning"`
	WarmupMode    bool   `json:"warmup_mode"`
}

type AssessmentJobResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type AssessmentResultResponse struct {
	ID           string                 `json:"id"`
	Status       string                 `json:"status"`
	Result       *BioAssessmentResponse `json:"result,omitempty"`
	ErrorMessage string                 `json:"error_message,omitempty"`
}

type SubmissionReviewRequest struct {
	UserID            string `json:"user_id" validate:"required"`
	TaskID            string `json:"task_id"`
	TaskTitle         string `json:"task_title" validate:"required"`
	TaskBrief         string `json:"task_brief" validate:"required"`
	FileContent       string `json:"file_content,omitempty"`
	FileURL           string `json:"file_url,omitempty"`
	ClientConstraints string `json:"client_constraints,omitempty"`
}

type SubmissionReviewResponse struct {
	Agent             AgentName `json:"agent"`
	Feedback          string    `json:"feedback"`
	Passed            bool      `json:"passed"`
	Score             int       `json:"score"`
	ImprovementPoints []string  `json:"improvement_points,omitempty"`
	PortfolioBullet   string    `json:"portfolio_bullet,omitempty"`
}

type InterrogationRequest struct {
	SubmissionContent string `json:"submission_content" validate:"required"`
	Approach          string `json:"approach" validate:"required"`
}

type PortfolioBulletRequest struct {
	TaskTitle       string `json:"task_title" validate:"required"`
	TaskDescription string `json:"task_description" validate:"required"`
	UserSubmission  string `json:"user_submission" validate:"required"`
}

type PortfolioBulletResponse struct {
	SkillTag    string `json:"skill_tag"`
	BulletPoint string `json:"bullet_point"`
}

type TaskAssignmentRequest struct {
	TaskTitle         string `json:"task_title" validate:"required"`
	TaskBrief         string `json:"task_brief" validate:"required"`
	Deadline          string `json:"deadline"`
	Track             string `json:"track"`
	ClientConstraints string `json:"client_constraints,omitempty"`
}

type InterruptionRequest struct {
	CurrentTask      string `json:"current_task" validate:"required"`
	InterruptionType string `json:"interruption_type"`
}

type SoftSkillsRequest struct {
	UserID             string              `json:"user_id,omitempty"`
	RecentInteractions []InteractionRecord `json:"recent_interactions,omitempty"`
}

type InteractionRecord struct {
	UserMessage   string `json:"user_message"`
	AgentResponse string `json:"agent_response"`
}

type MockInterviewRequest struct {
	InterviewType  string `json:"interview_type"`
	QuestionNumber int    `json:"question_number"`
	PreviousAnswer string `json:"previous_answer,omitempty"`
}

type MockInterviewResponse struct {
	Agent      AgentName `json:"agent"`
	Evaluation string    `json:"evaluation,omitempty"`
	Question   string    `json:"question"`
	Tip        string    `json:"tip"`
}

type RecommendationRequest struct {
	UserID             string `json:"user_id" validate:"required"`
	CVText             string `json:"cv_text,omitempty"`
	DocumentID         string `json:"document_id,omitempty"`
	DurationWeeks      int    `json:"duration_weeks"`
	Track              string `json:"track" validate:"required"`
	PerformanceSummary string `json:"performance_summary,omitempty"`
}

type RecommendationResponse struct {
	LetterText    string `json:"letter_text"`
	DurationWeeks int    `json:"duration_weeks"`
	Tone          string `json:"tone"`
}
