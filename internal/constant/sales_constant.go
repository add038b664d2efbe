package constant

import "time"

const (
	MessageSenderProspect = "prospect"
	MessageSenderAgent    = "agent"

	// SeedProspectMessage opens every dashboard-initiated conversation so the
	// agent has a prospect turn to respond to.
	SeedProspectMessage = "Hi, I'm interested in learning more about your services."

	// EngagementStep is added to the engagement score on every prospect turn.
	EngagementStep = 15

	// SendFallbackResponse replaces the agent turn when the backend rejects
	// or fails a message call.
	SendFallbackResponse = "I'm having trouble processing your message right now. Could you please try again?"

	// ErrorFallbackResponse is the terminal fallback when message handling
	// itself fails.
	ErrorFallbackResponse = "I appreciate your interest. Let me connect you with our team to discuss how we can help your business grow."

	OnboardingFallbackResponse = "I apologize, but I'm having trouble processing your response. Could you please try again?"

	OnboardingGreeting = "Hello! I'm your AI Interface Agent powered by ElevenLabs voice technology. I'm here to learn about your business so I can set up personalized sales automation for you. Let's start with a simple question: What is your business goal and what are you selling?"

	ConversationGreeting = "Hello! Thank you for your interest. I'm an AI sales agent powered by ElevenLabs voice technology. I'd love to help you understand how our solutions can benefit your business. What specific challenges are you looking to solve?"

	// ProbeInterval paces the background connectivity probe.
	ProbeInterval = 30 * time.Second

	// TypingInterval paces simulated character-by-character agent typing.
	TypingInterval = 50 * time.Millisecond

	// DemoReplyDelay delays canned agent replies in demo mode.
	DemoReplyDelay = 1500 * time.Millisecond

	// ConnectionStageStep spaces the simulated connection stages.
	ConnectionStageStep = 800 * time.Millisecond

	// WorkflowTopic is the in-process bus topic that carries workflow
	// kickoff messages from the event handler to the pipeline worker.
	WorkflowTopic = "workflow_initiated"

	// DefaultDealAmount values a closed deal when the conversation carried
	// no explicit figure.
	DefaultDealAmount = 5000.00
)

// SalesResponses is the canned agent reply pool used in demo mode and when
// the backend returns no usable agent turn.
var SalesResponses = []string{
	"That's a great question! Based on what you've shared, I can see how our AI-powered sales automation platform could help streamline your processes. Our solution has helped companies like yours increase their sales efficiency by up to 300%. Would you like me to show you some specific examples?",
	"I understand your concerns completely. Many of our clients had similar challenges before implementing our solution. What makes our approach unique is that we provide end-to-end automation - from prospect research to deal closing. Let me explain how we've helped companies in your industry overcome these exact challenges.",
	"Excellent! It sounds like you're ready to take the next step. I'd love to set up a personalized demo for you. Our AI system can be customized specifically for your business needs. When would be a good time to show you exactly how this would work for your company?",
	"Perfect! I'm confident our solution is exactly what you need. Based on our conversation, I can offer you a special trial period with a 30% discount for early adopters. This would give you full access to our AI sales automation platform. Would you like to move forward with this opportunity today?",
}

// DealClosureCues mark an agent turn as closing the deal. Matched
// case-insensitively as substrings.
var DealClosureCues = []string{
	"deal",
	"closed",
	"agreement",
	"sign",
	"purchase",
	"buy",
	"move forward",
	"let's do it",
}

// InterestCues raise deal potential to medium.
var InterestCues = []string{
	"interested",
	"tell me more",
	"how much",
	"price",
	"pricing",
	"demo",
	"trial",
}

// OnboardingQuestions drive the staged onboarding interview.
var OnboardingQuestions = []string{
	"What is your business goal?",
	"What are you selling?",
	"Who is your target market?",
	"What value do you provide?",
}

// Onboarding keyword tables, used to decide which topic a prospect turn
// already covered.
var (
	BusinessKeywords = []string{"sell", "business", "goal", "product", "service", "clothes", "software", "app", "platform"}
	TargetKeywords   = []string{"b2b", "b2c", "companies", "customers", "market", "target", "brand", "retail", "enterprise", "small business"}
	ValueKeywords    = []string{"unique", "value", "benefit", "advantage", "different", "special", "quality", "price", "fast", "cheap", "premium"}
)

// Onboarding follow-up prompts per missing topic.
const (
	OnboardingAskBusiness = "Thank you for that information! Could you tell me more about your business goal and what specific product or service you're selling?"
	OnboardingAskTarget   = "Great! Now I need to understand your target market better. Who are your ideal customers? Are you targeting B2B companies, B2C consumers, or a specific industry?"
	OnboardingAskValue    = "Excellent! One last question: What makes your product or service unique? What specific value do you provide that sets you apart from competitors?"
	OnboardingComplete    = "Perfect! I now have all the information I need about your business. Let me set up your automated sales system right away. Your AI agents will start researching prospects and sending personalized emails immediately!"
)
