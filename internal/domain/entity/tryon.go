// Package entity 定义领域实体
package entity

// TryOnRequest 换装请求
type TryOnRequest struct {
	// PersonImage 人物照片，data URL 或远程 URL
	PersonImage string
	// ClothingDescription 目标服装风格描述
	ClothingDescription string
}

// TryOnResult 换装结果，上游返回何种结构都归一为此形状
type TryOnResult struct {
	Image *string
	Text  *string
	Model string
}

// HasImage 是否成功提取到生成图片
func (r *TryOnResult) HasImage() bool {
	return r != nil && r.Image != nil && *r.Image != ""
}

// Style 预置穿搭风格
type Style struct {
	ID          string
	Name        string
	Description string
	Image       string
	Prompt      string
}
