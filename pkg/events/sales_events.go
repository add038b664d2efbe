package events

import "time"

// Event type codes used on the bus. NATS subjects are derived from these as
// "events.<TYPE>".
const (
	TypeDealClosed        = "DEAL_CLOSED"
	TypeWorkflowInitiated = "WORKFLOW_INITIATED"
	TypeSessionUpdated    = "SESSION_UPDATED"
	TypeColdEmailQueued   = "COLD_EMAIL_QUEUED"
)

// NewDealClosedEvent is published exactly once per session, when a prospect
// turn first signals deal closure.
func NewDealClosedEvent(sessionID, conversationID, prospectID string, amount float64, customerEmail, salesAgentID string) Event {
	return BaseEvent{
		Type: TypeDealClosed,
		Data: map[string]interface{}{
			"session_id":      sessionID,
			"conversation_id": conversationID,
			"prospect_id":     prospectID,
			"amount":          amount,
			"customer_email":  customerEmail,
			"sales_agent_id":  salesAgentID,
		},
		OccurredAt: time.Now(),
	}
}

// NewWorkflowInitiatedEvent marks onboarding completion and kicks off the
// automated prospect research pipeline.
func NewWorkflowInitiatedEvent(profileID, businessGoal, targetMarket string) Event {
	return BaseEvent{
		Type: TypeWorkflowInitiated,
		Data: map[string]interface{}{
			"profile_id":    profileID,
			"business_goal": businessGoal,
			"target_market": targetMarket,
		},
		OccurredAt: time.Now(),
	}
}

// NewSessionUpdatedEvent carries dashboard-relevant session state changes to
// websocket subscribers.
func NewSessionUpdatedEvent(sessionID, stage string, engagementScore int, dealPotential string) Event {
	return BaseEvent{
		Type: TypeSessionUpdated,
		Data: map[string]interface{}{
			"session_id":       sessionID,
			"stage":            stage,
			"engagement_score": engagementScore,
			"deal_potential":   dealPotential,
		},
		OccurredAt: time.Now(),
	}
}

// NewColdEmailQueuedEvent schedules delivery of a generated cold email.
func NewColdEmailQueuedEvent(emailID, prospectID, contactEmail string) Event {
	return BaseEvent{
		Type: TypeColdEmailQueued,
		Data: map[string]interface{}{
			"email_id":      emailID,
			"prospect_id":   prospectID,
			"contact_email": contactEmail,
		},
		OccurredAt: time.Now(),
	}
}
