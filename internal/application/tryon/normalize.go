package tryon

import (
	"regexp"

	"virtual-tryon-api/internal/infrastructure/llm"
)

var (
	// base64Image 内联 base64 图片，优先于 URL 匹配
	base64Image = regexp.MustCompile(`data:image/[^;]+;base64,[A-Za-z0-9+/=]+`)
	// imageURL 以常见图片扩展名结尾的 http(s) 链接
	imageURL = regexp.MustCompile(`(?i)https?://[^\s"']+\.(jpg|jpeg|png|gif|webp)`)
)

// ImageSource 图片的提取来源
type ImageSource string

const (
	SourceNone   ImageSource = "none"
	SourceParts  ImageSource = "parts"
	SourceBase64 ImageSource = "base64"
	SourceURL    ImageSource = "url"
)

// Extraction 归一化后的上游内容
type Extraction struct {
	Image  *string
	Text   *string
	Source ImageSource
}

// Normalize 将 message.content 的任一形态归一为 {image, text}
func Normalize(content llm.MessageContent) Extraction {
	switch content.Kind {
	case llm.ContentParts:
		return fromParts(content.Parts)
	case llm.ContentText:
		return fromText(content.Text)
	default:
		return Extraction{Source: SourceNone}
	}
}

// fromParts 顺序遍历，同类型后出现的片段覆盖先出现的
func fromParts(parts []llm.ContentPart) Extraction {
	out := Extraction{Source: SourceNone}
	for _, part := range parts {
		switch part.Type {
		case llm.PartTypeImageURL:
			if part.ImageURL == nil || part.ImageURL.URL == "" {
				continue
			}
			url := part.ImageURL.URL
			out.Image = &url
			out.Source = SourceParts
		case llm.PartTypeText:
			out.Text = part.Text
		}
	}
	return out
}

// fromText 从自由文本中提取图片，整段文本原样作为 text 返回
func fromText(s string) Extraction {
	text := s
	out := Extraction{Text: &text, Source: SourceNone}

	if m := base64Image.FindString(s); m != "" {
		out.Image = &m
		out.Source = SourceBase64
		return out
	}
	if m := imageURL.FindString(s); m != "" {
		out.Image = &m
		out.Source = SourceURL
	}
	return out
}
