package llm

import (
	"bytes"
	"encoding/json"
)

// 消息片段类型
const (
	PartTypeText     = "text"
	PartTypeImageURL = "image_url"
)

// ChatCompletionRequest 多模态 chat completions 请求体
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Modalities  []string      `json:"modalities,omitempty"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatMessage 请求消息
type ChatMessage struct {
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

// ContentPart 多模态消息片段（文本或图片引用）
type ContentPart struct {
	Type     string    `json:"type"`
	Text     *string   `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// TextPart 构造文本片段
func TextPart(text string) ContentPart {
	return ContentPart{Type: PartTypeText, Text: &text}
}

// ImagePart 构造图片片段
func ImagePart(url string) ContentPart {
	return ContentPart{Type: PartTypeImageURL, ImageURL: &ImageURL{URL: url}}
}

// ImageURL 图片引用
type ImageURL struct {
	URL string `json:"url"`
}

// UnmarshalJSON 兼容部分网关直接返回字符串形式的 image_url
func (u *ImageURL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		u.URL = s
		return nil
	}
	type plain ImageURL
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = ImageURL(p)
	return nil
}

// ChatCompletionResponse 上游响应中本服务关心的部分
// 只读取 choices[0].message.content，其余元数据尽力解析，形态不符时忽略
type ChatCompletionResponse struct {
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage,omitempty"`
}

// UnmarshalJSON 宽松解析：非对象响应、异常的 choices 或 usage 都不视为错误
func (r *ChatCompletionResponse) UnmarshalJSON(data []byte) error {
	*r = ChatCompletionResponse{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	var choices []json.RawMessage
	if err := json.Unmarshal(fields["choices"], &choices); err == nil {
		r.Choices = make([]Choice, len(choices))
		for i, raw := range choices {
			// 解析失败的候选保留为空内容，保持下标不变
			_ = json.Unmarshal(raw, &r.Choices[i])
		}
	}

	var usage Usage
	if err := json.Unmarshal(fields["usage"], &usage); err == nil {
		r.Usage = &usage
	}
	return nil
}

// Choice 候选结果
type Choice struct {
	Message ResponseMessage `json:"message"`
}

// ResponseMessage 响应消息
type ResponseMessage struct {
	Content MessageContent `json:"content"`
}

// Usage token 用量
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// FirstContent 返回 choices[0].message.content，不存在时为空内容
func (r *ChatCompletionResponse) FirstContent() MessageContent {
	if r == nil || len(r.Choices) == 0 {
		return MessageContent{}
	}
	return r.Choices[0].Message.Content
}

// ContentKind message.content 的形态
type ContentKind int

const (
	// ContentNone 缺失或无法识别
	ContentNone ContentKind = iota
	// ContentText 单个字符串
	ContentText
	// ContentParts 有序片段数组
	ContentParts
)

// String 返回形态名称
func (k ContentKind) String() string {
	switch k {
	case ContentText:
		return "text"
	case ContentParts:
		return "parts"
	default:
		return "none"
	}
}

// MessageContent message.content 的标签联合
type MessageContent struct {
	Kind  ContentKind
	Text  string
	Parts []ContentPart
}

// UnmarshalJSON 按 JSON 形态区分字符串与片段数组，其余形态记为 ContentNone
func (c *MessageContent) UnmarshalJSON(data []byte) error {
	*c = MessageContent{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		c.Kind = ContentText
		c.Text = s
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		c.Kind = ContentParts
		c.Parts = make([]ContentPart, 0, len(raw))
		for _, item := range raw {
			var part ContentPart
			// 单个片段解析失败不影响其余片段
			if err := json.Unmarshal(item, &part); err != nil {
				continue
			}
			c.Parts = append(c.Parts, part)
		}
	}
	return nil
}

// MarshalJSON 按形态还原 JSON
func (c MessageContent) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ContentText:
		return json.Marshal(c.Text)
	case ContentParts:
		return json.Marshal(c.Parts)
	default:
		return []byte("null"), nil
	}
}
