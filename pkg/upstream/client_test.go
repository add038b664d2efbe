package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":            "healthy",
			"service":           "Digital Sales Agent Backend",
			"agent_status":      "connected",
			"elevenlabs_status": "configured",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	res, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, res.AgentConnected())
	assert.True(t, res.VoiceConfigured())
}

func TestHealthDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Health(context.Background())
	assert.Error(t, err)
}

func TestStartConversation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/conversations/start", r.URL.Path)
		var req StartConversationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "prospect-7", req.ProspectID)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":             "conversation_started",
			"conversation_id":    "conv-42",
			"initial_response":   "Hello! Thank you for your interest.",
			"audio_url":          "data:audio/mpeg;base64,AAAA",
			"elevenlabs_enabled": true,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	res, err := c.StartConversation(context.Background(), &StartConversationRequest{ProspectID: "prospect-7"})
	require.NoError(t, err)
	assert.True(t, res.Started())
	assert.Equal(t, "conv-42", res.ConversationID)
	assert.Equal(t, "Hello! Thank you for your interest.", res.InitialResponse)
}

func TestSendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/conversations/conv-42/message", r.URL.Path)
		var req MessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tell me more", req.Message)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":          "success",
			"agent_response":  "That's a great question!",
			"conversation_id": "conv-42",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	res, err := c.SendMessage(context.Background(), "conv-42", &MessageRequest{Message: "tell me more"})
	require.NoError(t, err)
	assert.Equal(t, "That's a great question!", res.AgentResponse)
}

func TestSendMessageUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	_, err := c.SendMessage(context.Background(), "conv-42", &MessageRequest{Message: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got status 500")
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.Health(ctx)
	assert.Error(t, err)
}
