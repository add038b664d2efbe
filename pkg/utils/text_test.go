package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short", 20))
	assert.Equal(t, "hello there...", Preview("hello there general kenobi", 14))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("We sell B2B software", []string{"b2b", "retail"}))
	assert.False(t, ContainsAny("We sell shoes", []string{"b2b", "retail"}))
}

func TestMatchedKeywords(t *testing.T) {
	got := MatchedKeywords("AI sales automation for marketing teams", []string{"automation", "ai", "sales", "crm", "marketing"})
	assert.Equal(t, []string{"automation", "ai", "sales", "marketing"}, got)
}
