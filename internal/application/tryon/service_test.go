package tryon

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-tryon-api/internal/config"
	"virtual-tryon-api/internal/domain/entity"
	"virtual-tryon-api/internal/infrastructure/llm"
	"virtual-tryon-api/pkg/errors"
)

// fakeCompleter 记录请求并返回预设结果
type fakeCompleter struct {
	calls int
	got   *llm.ChatCompletionRequest
	resp  *llm.ChatCompletionResponse
	err   error
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	f.calls++
	f.got = req
	return f.resp, f.err
}

func testLLMConfig() *config.LLMConfig {
	return &config.LLMConfig{
		Model:       "google/gemini-3-pro-image-preview",
		Temperature: 0.7,
		MaxTokens:   8192,
	}
}

func validRequest() entity.TryOnRequest {
	return entity.TryOnRequest{
		PersonImage:         "data:image/jpeg;base64,/9j/AAAA",
		ClothingDescription: "a navy suit",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     entity.TryOnRequest
		wantMsg string
	}{
		{name: "both missing", req: entity.TryOnRequest{}, wantMsg: MsgMissingPersonImage},
		{name: "person image missing", req: entity.TryOnRequest{ClothingDescription: "x"}, wantMsg: MsgMissingPersonImage},
		{name: "clothing missing", req: entity.TryOnRequest{PersonImage: "x"}, wantMsg: MsgMissingClothing},
		{name: "valid", req: validRequest()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr := errors.AsAppError(err)
			assert.Equal(t, errors.CodeInvalidParam, appErr.Code)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestTryOnRejectsBeforeUpstream(t *testing.T) {
	fake := &fakeCompleter{}
	svc := NewService(fake, testLLMConfig())

	_, err := svc.TryOn(context.Background(), entity.TryOnRequest{ClothingDescription: "x"})
	require.Error(t, err)
	assert.Equal(t, 0, fake.calls)
}

func TestTryOnBuildsUpstreamRequest(t *testing.T) {
	fake := &fakeCompleter{resp: &llm.ChatCompletionResponse{}}
	svc := NewService(fake, testLLMConfig())

	req := validRequest()
	_, err := svc.TryOn(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, fake.calls)

	got := fake.got
	assert.Equal(t, "google/gemini-3-pro-image-preview", got.Model)
	assert.Equal(t, []string{"text", "image"}, got.Modalities)
	assert.Equal(t, 0.7, got.Temperature)
	assert.Equal(t, 8192, got.MaxTokens)

	require.Len(t, got.Messages, 1)
	msg := got.Messages[0]
	assert.Equal(t, "user", msg.Role)
	require.Len(t, msg.Content, 2)
	assert.Equal(t, llm.PartTypeText, msg.Content[0].Type)
	require.NotNil(t, msg.Content[0].Text)
	assert.Equal(t, BuildPrompt(req.ClothingDescription), *msg.Content[0].Text)
	assert.Equal(t, llm.PartTypeImageURL, msg.Content[1].Type)
	require.NotNil(t, msg.Content[1].ImageURL)
	assert.Equal(t, req.PersonImage, msg.Content[1].ImageURL.URL)
}

func TestTryOnResult(t *testing.T) {
	fake := &fakeCompleter{resp: &llm.ChatCompletionResponse{
		Choices: []llm.Choice{{Message: llm.ResponseMessage{Content: llm.MessageContent{
			Kind: llm.ContentText,
			Text: "here you go data:image/png;base64,AAAA more text",
		}}}},
	}}
	svc := NewService(fake, testLLMConfig())

	result, err := svc.TryOn(context.Background(), validRequest())
	require.NoError(t, err)
	require.True(t, result.HasImage())
	assert.Equal(t, "data:image/png;base64,AAAA", *result.Image)
	assert.Equal(t, "here you go data:image/png;base64,AAAA more text", *result.Text)
	assert.Equal(t, "google/gemini-3-pro-image-preview", result.Model)
}

func TestTryOnNoImageStillSucceeds(t *testing.T) {
	fake := &fakeCompleter{resp: &llm.ChatCompletionResponse{Choices: []llm.Choice{}}}
	svc := NewService(fake, testLLMConfig())

	result, err := svc.TryOn(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, result.HasImage())
	assert.Nil(t, result.Image)
	assert.Nil(t, result.Text)
}

func TestTryOnMapsUpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   errors.ErrorCode
		wantMsg    string
	}{
		{
			name:       "rate limited",
			err:        &llm.UpstreamError{StatusCode: 429, Body: "slow down"},
			wantStatus: http.StatusTooManyRequests,
			wantCode:   errors.CodeTooManyRequests,
			wantMsg:    MsgRateLimited,
		},
		{
			name:       "quota exhausted",
			err:        &llm.UpstreamError{StatusCode: 402, Body: "pay up"},
			wantStatus: http.StatusPaymentRequired,
			wantCode:   errors.CodeQuotaExhausted,
			wantMsg:    MsgQuotaExhausted,
		},
		{
			name:       "server error includes body",
			err:        &llm.UpstreamError{StatusCode: 503, Body: `{"error":"overloaded"}`},
			wantStatus: http.StatusInternalServerError,
			wantCode:   errors.CodeLLMCallFailed,
			wantMsg:    MsgProcessingFailed + `{"error":"overloaded"}`,
		},
		{
			name:       "bad request from upstream",
			err:        &llm.UpstreamError{StatusCode: 400, Body: "bad image"},
			wantStatus: http.StatusInternalServerError,
			wantCode:   errors.CodeLLMCallFailed,
			wantMsg:    MsgProcessingFailed + "bad image",
		},
		{
			name:       "network error",
			err:        fmt.Errorf("call chat completions: %w", context.DeadlineExceeded),
			wantStatus: http.StatusInternalServerError,
			wantCode:   errors.CodeLLMCallFailed,
			wantMsg:    MsgProcessingFailed + "call chat completions: context deadline exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeCompleter{err: tt.err}, testLLMConfig())

			result, err := svc.TryOn(context.Background(), validRequest())
			require.Error(t, err)
			assert.Nil(t, result)

			appErr := errors.AsAppError(err)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}
