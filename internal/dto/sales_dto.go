package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Health ---

type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	AgentStatus      string `json:"agent_status"`
	ElevenLabsStatus string `json:"elevenlabs_status"`
	DemoMode         bool   `json:"demo_mode"`
}

// --- Conversations ---

type StartConversationRequest struct {
	ProspectId  string `json:"prospect_id" validate:"required"`
	UserMessage string `json:"user_message,omitempty"`
	DemoMode    bool   `json:"demo_mode,omitempty"`
}

type StartConversationResponse struct {
	Status          string          `json:"status"`
	SessionId       string          `json:"session_id"`
	ConversationId  string          `json:"conversation_id"`
	InitialResponse string          `json:"initial_response"`
	AudioUrl        string          `json:"audio_url,omitempty"`
	Session         SessionResponse `json:"session"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type SendMessageResponse struct {
	Status        string          `json:"status"`
	AgentResponse string          `json:"agent_response"`
	AudioUrl      string          `json:"audio_url,omitempty"`
	Session       SessionResponse `json:"session"`
}

type MessageResponse struct {
	Id        string    `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	AudioRef  string    `json:"audio_ref,omitempty"`
}

type SessionResponse struct {
	Id              string            `json:"id"`
	ProspectId      string            `json:"prospect_id"`
	ConversationId  string            `json:"conversation_id"`
	Stage           string            `json:"stage"`
	DemoMode        bool              `json:"demo_mode"`
	EngagementScore int               `json:"engagement_score"`
	DealPotential   string            `json:"deal_potential"`
	DealClosed      bool              `json:"deal_closed"`
	Messages        []MessageResponse `json:"messages"`
}

type MuteRequest struct {
	Muted bool `json:"muted"`
}

type MuteResponse struct {
	Status string `json:"status"`
	Muted  bool   `json:"muted"`
}

// --- Onboarding ---

type OnboardingTurnRequest struct {
	Message           string               `json:"message" validate:"required"`
	History           []OnboardingMessage  `json:"history,omitempty"`
	ConversationState OnboardingStateFlags `json:"conversation_state,omitempty"`
}

type OnboardingMessage struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

type OnboardingStateFlags struct {
	AskedAboutBusiness bool `json:"askedAboutBusiness,omitempty"`
	AskedAboutTarget   bool `json:"askedAboutTarget,omitempty"`
	AskedAboutValue    bool `json:"askedAboutValue,omitempty"`
}

type OnboardingTurnResponse struct {
	Status               string `json:"status"`
	AgentResponse        string `json:"agent_response"`
	AudioUrl             string `json:"audio_url,omitempty"`
	NextQuestion         bool   `json:"next_question"`
	ConversationComplete bool   `json:"conversation_complete"`
}

type CompleteOnboardingRequest struct {
	BusinessGoal       string `json:"business_goal" validate:"required"`
	ProductDescription string `json:"product_description" validate:"required"`
	TargetMarket       string `json:"target_market" validate:"required"`
	ValueProposition   string `json:"value_proposition" validate:"required"`
	PricingModel       string `json:"pricing_model,omitempty"`
}

type CompleteOnboardingResponse struct {
	Status            string                  `json:"status"`
	Message           string                  `json:"message"`
	WorkflowInitiated bool                    `json:"workflow_initiated"`
	BusinessInfo      BusinessProfileResponse `json:"business_info"`
	NextSteps         []string                `json:"next_steps"`
}

type BusinessProfileResponse struct {
	Id                    uuid.UUID  `json:"id"`
	BusinessGoal          string     `json:"business_goal"`
	ProductDescription    string     `json:"product_description"`
	TargetMarket          string     `json:"target_market"`
	ValueProposition      string     `json:"value_proposition"`
	PricingModel          string     `json:"pricing_model,omitempty"`
	WorkflowInitiated     bool       `json:"workflow_initiated"`
	OnboardingCompletedAt *time.Time `json:"onboarding_completed_at,omitempty"`
}

type OnboardingStatusResponse struct {
	OnboardingCompleted bool                     `json:"onboarding_completed"`
	BusinessInfo        *BusinessProfileResponse `json:"business_info,omitempty"`
}

// --- Workflow ---

type WorkflowStatusResponse struct {
	OnboardingCompleted bool   `json:"onboarding_completed"`
	ResearchStatus      string `json:"research_status"`
	EmailsGenerated     int64  `json:"emails_generated"`
	EmailsSent          int64  `json:"emails_sent"`
	ConversationsActive int64  `json:"conversations_active"`
	DealsInProgress     int64  `json:"deals_in_progress"`
	LastActivity        string `json:"last_activity"`
	NextAction          string `json:"next_action"`
}

// --- Prospects ---

type ResearchProspectsRequest struct {
	TargetDomain string `json:"target_domain,omitempty"`
	Industry     string `json:"industry,omitempty"`
	CompanySize  string `json:"company_size,omitempty"`
}

type ContactResponse struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Title         string `json:"title"`
	DecisionMaker bool   `json:"decision_maker"`
}

type ProspectResponse struct {
	Id          uuid.UUID         `json:"id"`
	CompanyName string            `json:"company_name"`
	Domain      string            `json:"domain"`
	Industry    string            `json:"industry"`
	CompanySize string            `json:"company_size,omitempty"`
	Contacts    []ContactResponse `json:"contacts"`
	LeadScore   float64           `json:"lead_score"`
	Category    string            `json:"category"`
	DealStage   string            `json:"deal_stage"`
	CreatedAt   time.Time         `json:"created_at"`
}

type ResearchProspectsResponse struct {
	Status         string             `json:"status"`
	Message        string             `json:"message"`
	ProspectsFound int                `json:"prospects_found"`
	Prospects      []ProspectResponse `json:"prospects"`
}

type QualifyLeadRequest struct {
	ProspectId   string `json:"prospect_id" validate:"required"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactTitle string `json:"contact_title,omitempty"`
	PainPoints   string `json:"pain_points,omitempty"`
	Timeline     string `json:"timeline,omitempty"`
}

type QualifyLeadResponse struct {
	Status       string             `json:"status"`
	ProspectId   string             `json:"prospect_id"`
	BantScores   map[string]float64 `json:"bant_scores"`
	OverallScore float64            `json:"overall_score"`
	Category     string             `json:"category"`
}

// --- Emails ---

type GenerateEmailRequest struct {
	ProspectId   string `json:"prospect_id" validate:"required"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty" validate:"omitempty,email"`
}

type EmailDataResponse struct {
	Subject         string `json:"subject"`
	Preview         string `json:"preview"`
	TalkToSalesLink string `json:"talk_to_sales_link"`
	SentTo          string `json:"sent_to,omitempty"`
}

type GenerateEmailResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	EmailId   string            `json:"email_id"`
	EmailData EmailDataResponse `json:"email_data"`
}

type SendEmailRequest struct {
	EmailId string `json:"email_id" validate:"required"`
}

type SendEmailResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	EmailId string `json:"email_id"`
}

// --- Rewards ---

type DealPaymentRequest struct {
	DealId        string  `json:"deal_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	CustomerEmail string  `json:"customer_email" validate:"required,email"`
	SalesAgentId  string  `json:"sales_agent_id" validate:"required"`
}

type DealPaymentResponse struct {
	Status           string  `json:"status"`
	DealId           string  `json:"deal_id"`
	TotalAmount      float64 `json:"total_amount"`
	CommissionAmount float64 `json:"commission_amount"`
	Message          string  `json:"message,omitempty"`
}

// --- Pipeline messages ---

// WorkflowInitiatedMessage rides the internal pipeline bus from onboarding
// completion to the research worker.
type WorkflowInitiatedMessage struct {
	ProfileId    string `json:"profile_id"`
	BusinessGoal string `json:"business_goal"`
	TargetMarket string `json:"target_market"`
}

// --- Analytics ---

type AnalyticsResponse struct {
	TotalProspects      int64  `json:"total_prospects"`
	EmailsGenerated     int64  `json:"emails_generated"`
	EmailsSent          int64  `json:"emails_sent"`
	ActiveConversations int64  `json:"active_conversations"`
	DealsClosed         int64  `json:"deals_closed"`
	ConversionRate      string `json:"conversion_rate"`
}
