package tryon

import "virtual-tryon-api/internal/domain/entity"

// catalog 客户端可选的固定穿搭风格，Prompt 即提交时的 clothingDescription
var catalog = []entity.Style{
	{
		ID:          "casual",
		Name:        "休闲日常",
		Description: "舒适自然的日常穿搭",
		Image:       "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=300&h=400&fit=crop",
		Prompt:      "casual everyday outfit: a comfortable cotton t-shirt in a soft neutral color, paired with well-fitted jeans and clean white sneakers",
	},
	{
		ID:          "business",
		Name:        "商务正装",
		Description: "专业干练的职场风格",
		Image:       "https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=300&h=400&fit=crop",
		Prompt:      "professional business attire: a tailored navy blue suit with a crisp white dress shirt, silk tie, and polished leather oxford shoes",
	},
	{
		ID:          "streetwear",
		Name:        "街头潮流",
		Description: "个性张扬的潮流穿搭",
		Image:       "https://images.unsplash.com/photo-1552374196-1ab2a1c593e8?w=300&h=400&fit=crop",
		Prompt:      "trendy streetwear style: an oversized graphic hoodie, cargo pants, chunky sneakers, and a snapback cap with gold chain accessories",
	},
	{
		ID:          "elegant",
		Name:        "优雅礼服",
		Description: "高贵典雅的正式场合",
		Image:       "https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=300&h=400&fit=crop",
		Prompt:      "elegant formal evening wear: a sophisticated black-tie outfit with a floor-length evening gown or classic tuxedo, accessorized with elegant jewelry",
	},
	{
		ID:          "sporty",
		Name:        "运动活力",
		Description: "活力四射的运动风格",
		Image:       "https://images.unsplash.com/photo-1483721310020-03333e577078?w=300&h=400&fit=crop",
		Prompt:      "athletic sportswear: a fitted performance top with moisture-wicking fabric, stylish athletic leggings or shorts, and modern running shoes",
	},
	{
		ID:          "vintage",
		Name:        "复古怀旧",
		Description: "经典复古的时尚韵味",
		Image:       "https://images.unsplash.com/photo-1529139574466-a303027c1d8b?w=300&h=400&fit=crop",
		Prompt:      "vintage retro style from the 1970s: high-waisted flared pants, a fitted turtleneck sweater, platform shoes, and round sunglasses",
	},
}

// Styles 返回风格目录副本
func Styles() []entity.Style {
	out := make([]entity.Style, len(catalog))
	copy(out, catalog)
	return out
}

// FindStyle 按 ID 查找风格
func FindStyle(id string) (entity.Style, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return entity.Style{}, false
}
