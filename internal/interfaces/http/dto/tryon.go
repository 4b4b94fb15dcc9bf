package dto

import "virtual-tryon-api/internal/domain/entity"

// TryOnRequest 换装请求体
type TryOnRequest struct {
	PersonImage         string `json:"personImage"`
	ClothingDescription string `json:"clothingDescription"`
}

// ToEntity 转换为领域请求
func (r *TryOnRequest) ToEntity() entity.TryOnRequest {
	return entity.TryOnRequest{
		PersonImage:         r.PersonImage,
		ClothingDescription: r.ClothingDescription,
	}
}

// TryOnResponse 换装响应；image 为 null 时客户端按生成失败处理
type TryOnResponse struct {
	Success bool    `json:"success"`
	Image   *string `json:"image"`
	Text    *string `json:"text"`
	Model   string  `json:"model"`
}

// ToTryOnResponse 转换为响应
func ToTryOnResponse(r *entity.TryOnResult) *TryOnResponse {
	return &TryOnResponse{
		Success: true,
		Image:   r.Image,
		Text:    r.Text,
		Model:   r.Model,
	}
}

// StyleResponse 穿搭风格
type StyleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Prompt      string `json:"prompt"`
}

// StyleListResponse 风格目录
type StyleListResponse struct {
	Styles []*StyleResponse `json:"styles"`
}

// ToStyleResponse 转换为风格响应
func ToStyleResponse(s entity.Style) *StyleResponse {
	return &StyleResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Image:       s.Image,
		Prompt:      s.Prompt,
	}
}

// ToStyleListResponse 转换为风格目录响应
func ToStyleListResponse(styles []entity.Style) *StyleListResponse {
	out := make([]*StyleResponse, 0, len(styles))
	for _, s := range styles {
		out = append(out, ToStyleResponse(s))
	}
	return &StyleListResponse{Styles: out}
}
