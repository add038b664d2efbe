package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the external sales-agent backend over HTTP. All calls are
// bounded by the client timeout so a stalled backend cannot wedge a session.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

const defaultTimeout = 10 * time.Second

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	AgentStatus      string `json:"agent_status"`
	ElevenLabsStatus string `json:"elevenlabs_status"`
	ElevenLabsVoice  string `json:"elevenlabs_voice_id"`
}

// AgentConnected reports whether the agent runtime behind the backend is up.
func (h *HealthResponse) AgentConnected() bool {
	return h.AgentStatus == "connected"
}

// VoiceConfigured reports whether ElevenLabs synthesis is available upstream.
func (h *HealthResponse) VoiceConfigured() bool {
	return h.ElevenLabsStatus == "configured"
}

type StartConversationRequest struct {
	ProspectID  string `json:"prospect_id"`
	UserMessage string `json:"user_message,omitempty"`
}

type StartConversationResponse struct {
	Status            string `json:"status"`
	Message           string `json:"message"`
	ConversationID    string `json:"conversation_id"`
	InitialResponse   string `json:"initial_response"`
	AudioURL          string `json:"audio_url"`
	ElevenLabsEnabled bool   `json:"elevenlabs_enabled"`
}

// Started reports whether the backend acknowledged the new conversation.
func (r *StartConversationResponse) Started() bool {
	return r.Status == "conversation_started"
}

type MessageRequest struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Status            string `json:"status"`
	AgentResponse     string `json:"agent_response"`
	AudioURL          string `json:"audio_url"`
	ElevenLabsEnabled bool   `json:"elevenlabs_enabled"`
	ConversationID    string `json:"conversation_id"`
}

// Health probes the backend. Callers treat any error as "disconnected".
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StartConversation(ctx context.Context, req *StartConversationRequest) (*StartConversationResponse, error) {
	var out StartConversationResponse
	if err := c.do(ctx, http.MethodPost, "/api/conversations/start", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendMessage(ctx context.Context, conversationID string, req *MessageRequest) (*MessageResponse, error) {
	var out MessageResponse
	path := fmt.Sprintf("/api/conversations/%s/message", conversationID)
	if err := c.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		payloadJson, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(payloadJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	return json.Unmarshal(resBody, out)
}
