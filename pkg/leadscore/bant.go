// Package leadscore implements BANT (Budget, Authority, Need, Timeline)
// qualification scoring for sales prospects.
package leadscore

import "strings"

// Scores holds the four BANT axis scores on a 1-10 scale.
type Scores struct {
	Budget    float64 `json:"budget"`
	Authority float64 `json:"authority"`
	Need      float64 `json:"need"`
	Timeline  float64 `json:"timeline"`
}

// Axis weights. Authority and need carry the most signal.
const (
	budgetWeight    = 0.25
	authorityWeight = 0.30
	needWeight      = 0.30
	timelineWeight  = 0.15

	hotThreshold  = 8.0
	warmThreshold = 6.0
)

const (
	CategoryHot  = "hot"
	CategoryWarm = "warm"
	CategoryCold = "cold"
)

// Overall returns the weighted overall score.
func (s Scores) Overall() float64 {
	return s.Budget*budgetWeight +
		s.Authority*authorityWeight +
		s.Need*needWeight +
		s.Timeline*timelineWeight
}

// Category buckets the overall score into hot/warm/cold.
func (s Scores) Category() string {
	overall := s.Overall()
	switch {
	case overall >= hotThreshold:
		return CategoryHot
	case overall >= warmThreshold:
		return CategoryWarm
	default:
		return CategoryCold
	}
}

// CompanySignals is what research surfaced about the company.
type CompanySignals struct {
	FundingStage     string
	Revenue          string
	BudgetIndicators []string
	RecentNews       []string
	PainPoints       []string
}

// ContactSignals describes the contact being qualified.
type ContactSignals struct {
	Title         string
	Department    string
	DecisionMaker bool
}

// ConversationSignals is what the live conversation revealed.
type ConversationSignals struct {
	PainPoints string
	Challenges string
	Timeline   string
	Urgency    string
}

var (
	budgetIndicators = map[string][]string{
		"high":   {"funded", "series a", "series b", "ipo", "profitable", "revenue growth"},
		"medium": {"seed funding", "angel investment", "break even", "stable revenue"},
		"low":    {"startup", "bootstrap", "pre-revenue", "cost cutting"},
	}
	authorityIndicators = map[string][]string{
		"high":   {"ceo", "cto", "cfo", "founder", "president", "vp", "director"},
		"medium": {"manager", "lead", "senior", "principal"},
		"low":    {"analyst", "coordinator", "associate", "junior"},
	}
	needIndicators = map[string][]string{
		"high":   {"urgent", "critical", "immediate", "pain point", "problem", "challenge"},
		"medium": {"improvement", "optimization", "upgrade", "enhancement"},
		"low":    {"nice to have", "future", "considering", "exploring"},
	}
	timelineIndicators = map[string][]string{
		"high":   {"asap", "immediate", "this quarter", "urgent", "now"},
		"medium": {"next quarter", "3-6 months", "this year"},
		"low":    {"next year", "future", "someday", "eventually"},
	}
)

func countIndicators(text string, indicators []string) int {
	count := 0
	for _, indicator := range indicators {
		if strings.Contains(text, indicator) {
			count++
		}
	}
	return count
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ScoreBudget scores budget capability from company research signals.
func ScoreBudget(company CompanySignals) float64 {
	text := strings.ToLower(strings.Join(append(append([]string{
		company.FundingStage,
		company.Revenue,
	}, company.BudgetIndicators...), company.RecentNews...), " "))

	high := countIndicators(text, budgetIndicators["high"])
	medium := countIndicators(text, budgetIndicators["medium"])
	low := countIndicators(text, budgetIndicators["low"])

	switch {
	case high >= 2:
		return clamp(8.0+float64(high)*0.5, 1, 10)
	case high >= 1 || medium >= 2:
		return clamp(6.0+float64(high)*1.0+float64(medium)*0.5, 1, 8)
	case medium >= 1:
		return clamp(4.0+float64(medium)*1.0, 1, 6)
	case low >= 1:
		return clamp(3.0-float64(low)*0.5, 1, 10)
	default:
		return 5.0
	}
}

// ScoreAuthority scores decision-making authority from the contact's role.
func ScoreAuthority(contact ContactSignals) float64 {
	title := strings.ToLower(contact.Title)
	department := strings.ToLower(contact.Department)

	score := 5.0

	for _, indicator := range authorityIndicators["high"] {
		if strings.Contains(title, indicator) {
			if score < 9.0 {
				score = 9.0
			}
			break
		}
	}
	for _, indicator := range authorityIndicators["medium"] {
		if strings.Contains(title, indicator) {
			if score < 6.5 {
				score = 6.5
			}
			break
		}
	}
	for _, indicator := range authorityIndicators["low"] {
		if strings.Contains(title, indicator) {
			if score > 4.0 {
				score = 4.0
			}
		}
	}

	if contact.DecisionMaker {
		score = clamp(score+1.5, 1, 10)
	}
	for _, dept := range []string{"executive", "c-suite", "leadership"} {
		if strings.Contains(department, dept) {
			score = clamp(score+1.0, 1, 10)
			break
		}
	}

	return clamp(score, 1, 10)
}

// ScoreNeed scores urgency of business need from conversation and research.
func ScoreNeed(conversation ConversationSignals, company CompanySignals) float64 {
	text := strings.ToLower(strings.Join(append(append([]string{
		conversation.PainPoints,
		conversation.Challenges,
	}, company.PainPoints...), company.RecentNews...), " "))

	high := countIndicators(text, needIndicators["high"])
	medium := countIndicators(text, needIndicators["medium"])
	low := countIndicators(text, needIndicators["low"])

	switch {
	case high >= 2:
		return clamp(8.5+float64(high)*0.3, 1, 10)
	case high >= 1:
		return clamp(7.0+float64(high)*1.0, 1, 9)
	case medium >= 2:
		return clamp(5.5+float64(medium)*0.5, 1, 7)
	case medium >= 1:
		return clamp(4.5+float64(medium)*0.8, 1, 6)
	case low >= 1:
		return clamp(3.0-float64(low)*0.5, 1, 10)
	default:
		return 5.0
	}
}

// ScoreTimeline scores implementation urgency from conversation signals.
func ScoreTimeline(conversation ConversationSignals) float64 {
	text := strings.ToLower(strings.Join([]string{
		conversation.Timeline,
		conversation.Urgency,
	}, " "))

	high := countIndicators(text, timelineIndicators["high"])
	medium := countIndicators(text, timelineIndicators["medium"])
	low := countIndicators(text, timelineIndicators["low"])

	switch {
	case high >= 1:
		return clamp(8.0+float64(high)*1.0, 1, 10)
	case medium >= 1:
		return clamp(5.0+float64(medium)*1.0, 1, 7)
	case low >= 1:
		return clamp(3.0-float64(low)*0.5, 1, 10)
	default:
		return 5.0
	}
}

// Score runs the full BANT qualification for a prospect.
func Score(company CompanySignals, contact ContactSignals, conversation ConversationSignals) Scores {
	return Scores{
		Budget:    ScoreBudget(company),
		Authority: ScoreAuthority(contact),
		Need:      ScoreNeed(conversation, company),
		Timeline:  ScoreTimeline(conversation),
	}
}
