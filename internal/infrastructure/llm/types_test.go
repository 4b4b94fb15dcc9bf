package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageContentUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantKind  ContentKind
		wantText  string
		wantParts int
	}{
		{name: "string", raw: `"hello"`, wantKind: ContentText, wantText: "hello"},
		{name: "empty string", raw: `""`, wantKind: ContentText},
		{name: "parts", raw: `[{"type":"text","text":"a"},{"type":"image_url","image_url":{"url":"u"}}]`, wantKind: ContentParts, wantParts: 2},
		{name: "malformed part skipped", raw: `[{"type":"text","text":1},{"type":"text","text":"b"}]`, wantKind: ContentParts, wantParts: 1},
		{name: "null", raw: `null`, wantKind: ContentNone},
		{name: "object", raw: `{"type":"text"}`, wantKind: ContentNone},
		{name: "number", raw: `3`, wantKind: ContentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c MessageContent
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &c))
			assert.Equal(t, tt.wantKind, c.Kind)
			assert.Equal(t, tt.wantText, c.Text)
			assert.Len(t, c.Parts, tt.wantParts)
		})
	}
}

func TestChatCompletionResponseFirstContent(t *testing.T) {
	raw := `{
		"id": "gen-1",
		"model": "google/gemini-3-pro-image-preview",
		"choices": [
			{"index": 0, "message": {"role": "assistant", "content": [{"type": "image_url", "image_url": {"url": "https://cdn/x.png"}}]}},
			{"index": 1, "message": {"role": "assistant", "content": "ignored"}}
		]
	}`

	var resp ChatCompletionResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	content := resp.FirstContent()
	require.Equal(t, ContentParts, content.Kind)
	require.Len(t, content.Parts, 1)
	assert.Equal(t, "https://cdn/x.png", content.Parts[0].ImageURL.URL)

	var missing ChatCompletionResponse
	require.NoError(t, json.Unmarshal([]byte(`{"choices":[{"message":{}}]}`), &missing))
	assert.Equal(t, ContentNone, missing.FirstContent().Kind)

	var nilResp *ChatCompletionResponse
	assert.Equal(t, ContentNone, nilResp.FirstContent().Kind)
}

func TestChatCompletionResponseLenientMetadata(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantKind  ContentKind
		wantText  string
		wantUsage bool
	}{
		{
			name:     "odd id and usage",
			raw:      `{"id":123,"choices":[{"index":"0","message":{"content":"see https://x.com/pic.jpg"}}],"usage":{"total_tokens":"12"}}`,
			wantKind: ContentText,
			wantText: "see https://x.com/pic.jpg",
		},
		{
			name:      "valid usage kept",
			raw:       `{"choices":[{"message":{"role":7,"content":"hi"},"finish_reason":null}],"usage":{"total_tokens":12}}`,
			wantKind:  ContentText,
			wantText:  "hi",
			wantUsage: true,
		},
		{name: "choices not an array", raw: `{"choices":"x"}`, wantKind: ContentNone},
		{name: "message not an object", raw: `{"choices":[{"message":"x"}]}`, wantKind: ContentNone},
		{name: "top level array", raw: `[1,2]`, wantKind: ContentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp ChatCompletionResponse
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &resp))

			content := resp.FirstContent()
			assert.Equal(t, tt.wantKind, content.Kind)
			assert.Equal(t, tt.wantText, content.Text)
			if tt.wantUsage {
				require.NotNil(t, resp.Usage)
				assert.Equal(t, 12, resp.Usage.TotalTokens)
			} else {
				assert.Nil(t, resp.Usage)
			}
		})
	}
}

func TestMessageContentMarshal(t *testing.T) {
	text, err := json.Marshal(MessageContent{Kind: ContentText, Text: "hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `"hi"`, string(text))

	none, err := json.Marshal(MessageContent{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(none))

	parts, err := json.Marshal(MessageContent{Kind: ContentParts, Parts: []ContentPart{TextPart("a")}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"text","text":"a"}]`, string(parts))
}
