package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// claudeReply builds a minimal Messages API response carrying text.
func claudeReply(t *testing.T, texts ...string) (body string) {
	t.Helper()

	body = `{"id":"msg_test","type":"message","role":"assistant","model":"claude-test","stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":1},"content":[]}`

	var err error
	for i, text := range texts {
		body, err = sjson.Set(body, "content."+strconv.Itoa(i), map[string]string{"type": "text", "text": text})
		if err != nil {
			t.Fatalf("Failed to build reply: %v", err)
		}
	}
	return body
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (client *Client) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", "", WithBaseURL(server.URL), WithMaxRetries(0))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	client, err := NewClient("test-api-key", "claude-custom")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if client.Model() != "claude-custom" {
		t.Errorf("Expected model '%s', got '%s'", "claude-custom", client.Model())
	}

	client, err = NewClient("test-api-key", "")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if client.Model() != ClaudeModel {
		t.Errorf("Expected default model '%s', got '%s'", ClaudeModel, client.Model())
	}
}

func TestNewClientMissingKey(t *testing.T) {
	_, err := NewClient("", "")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got %v", err)
	}
}

func TestGenerate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Verify request.
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}

		if !strings.HasSuffix(r.URL.Path, "/v1/messages") {
			t.Errorf("Expected messages endpoint, got %s", r.URL.Path)
		}

		if r.Header.Get("X-Api-Key") != "test-key" {
			t.Error("Missing or incorrect API key header")
		}

		if r.Header.Get("Anthropic-Version") == "" {
			t.Error("Missing API version header")
		}

		raw, _ := io.ReadAll(r.Body)
		req := gjson.ParseBytes(raw)

		if req.Get("model").String() != ClaudeModel {
			t.Errorf("Expected model '%s', got '%s'", ClaudeModel, req.Get("model").String())
		}

		if req.Get("max_tokens").Int() != MaxTokens {
			t.Errorf("Expected max_tokens %d, got %d", MaxTokens, req.Get("max_tokens").Int())
		}

		if !strings.Contains(req.Get("system.0.text").String(), "elite technical writer") {
			t.Error("Expected system prompt")
		}

		prompt := req.Get("messages.0.content.0.text").String()
		if !strings.Contains(prompt, "Project Name: forge") {
			t.Errorf("Expected project context in prompt, got: %s", prompt)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(claudeReply(t, "- ✨ **Fast** - ", "Very fast.")))
	})

	resp, err := client.Generate(context.Background(), GenerateRequest{
		ProjectName: "forge",
		Section:     SectionFeatures,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if resp.Content != "- ✨ **Fast** - Very fast." {
		t.Errorf("Expected joined text blocks, got '%s'", resp.Content)
	}

	if resp.Section != SectionFeatures {
		t.Errorf("Expected section '%s', got '%s'", SectionFeatures, resp.Section)
	}
}

func TestGenerateStripsWrappingFence(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(claudeReply(t, "```markdown\n## Usage\n\nRun it.\n```")))
	})

	resp, err := client.Generate(context.Background(), GenerateRequest{Section: SectionUsage})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if resp.Content != "## Usage\n\nRun it." {
		t.Errorf("Expected fence to be stripped, got '%s'", resp.Content)
	}
}

func TestAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"Invalid request"}}`))
	})

	_, err := client.Generate(context.Background(), GenerateRequest{Section: SectionDescription})
	if err == nil {
		t.Fatal("Expected error for bad request, got nil")
	}

	if !strings.Contains(err.Error(), "400") {
		t.Errorf("Error should mention status code 400: %v", err)
	}

	if !strings.Contains(err.Error(), "description generation request failed") {
		t.Errorf("Error should name the section: %v", err)
	}
}

func TestEmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(claudeReply(t)))
	})

	_, err := client.Generate(context.Background(), GenerateRequest{Section: SectionUsage})
	if err == nil {
		t.Fatal("Expected error for empty content, got nil")
	}

	if !strings.Contains(err.Error(), "no content") {
		t.Errorf("Error should mention 'no content': %v", err)
	}
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, GenerateRequest{Section: SectionUsage})
	if err == nil {
		t.Error("Expected error for cancelled context, got nil")
	}
}

func TestStripMarkdownCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "with json code fence",
			input:    "```json\n{\"test\": \"value\"}\n```",
			expected: "{\"test\": \"value\"}",
		},
		{
			name:     "with markdown code fence",
			input:    "```markdown\n# Title\n\nBody\n```\n",
			expected: "# Title\n\nBody",
		},
		{
			name:     "bare fence with extra whitespace",
			input:    "```\nBody\n\n```",
			expected: "Body",
		},
		{
			name:     "separate code blocks kept",
			input:    "```bash\nnpm i\n```\n\nThen:\n\n```js\nrun()\n```",
			expected: "```bash\nnpm i\n```\n\nThen:\n\n```js\nrun()\n```",
		},
		{
			name:     "single language block kept",
			input:    "```bash\nnpm i\n```",
			expected: "```bash\nnpm i\n```",
		},
		{
			name:     "plain text",
			input:    "This is plain text",
			expected: "This is plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stripMarkdownCodeFences(tt.input)
			if result != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, result)
			}
		})
	}
}
