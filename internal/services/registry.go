package services

import "wdclabs/ai-office/internal/models"

// AgentProfile describes one agent's persona and the message categories it
// handles. The descriptions feed the classification prompt verbatim.
type AgentProfile struct {
	Name        models.AgentName
	Role        string
	Description string
}

// routableAgents are the four agents the AI classifier may pick between. The
// recommendation writer is only ever reached through the deterministic rules.
var routableAgents = []AgentProfile{
	{
		Name: models.AgentTolu,
		Role: "Onboarding Officer",
		Description: "Handles administrative questions, HR topics, contracts, salary, " +
			"working hours, policies, onboarding, certificates, recommendations.",
	},
	{
		Name: models.AgentEmem,
		Role: "Project Manager",
		Description: "Handles deadlines, task assignments, deliverables, client work, " +
			"project status, priorities, briefs, submissions.",
	},
	{
		Name: models.AgentSola,
		Role: "Technical Supervisor",
		Description: "Handles technical questions, code reviews, debugging, errors, " +
			"how-to questions, technical explanations, work reviews.",
	},
	{
		Name: models.AgentKemi,
		Role: "Career Coach",
		Description: "Handles emotional support, career advice, interview prep, " +
			"resume/CV help, encouragement, motivation, feelings of doubt or anxiety.",
	},
}

// agentTokens maps the classifier's one-word answer (title-cased) back to an
// agent identity. Unknown tokens are a classifier miss, not a guess.
var agentTokens = map[string]models.AgentName{
	"Tolu": models.AgentTolu,
	"Emem": models.AgentEmem,
	"Sola": models.AgentSola,
	"Kemi": models.AgentKemi,
}

func RoutableAgents() []AgentProfile {
	return routableAgents
}
