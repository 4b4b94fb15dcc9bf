package tryon

import "fmt"

// promptTemplate 是发送给上游模型的完整引导信号，两个占位符均为服装描述
const promptTemplate = `You are a virtual fashion stylist AI. I'm giving you an image of a person.

Your task: Generate a new image showing this same person wearing %[1]s.

Requirements:
- Keep the person's face, body shape, pose, skin tone, and hair exactly the same
- Replace their current clothing with %[1]s
- The clothing should fit naturally on the person's body
- Maintain realistic lighting and shadows
- Keep a similar background or use a clean studio background
- The result should look like a professional fashion photo
- Output only the final edited image, no text explanation needed`

// BuildPrompt 构造换装指令
func BuildPrompt(clothingDescription string) string {
	return fmt.Sprintf(promptTemplate, clothingDescription)
}
