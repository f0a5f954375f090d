package imagify

// StyleInfo describes a selectable image style.
type StyleInfo struct {
	ID          ImageStyle
	Name        string
	Description string
}

// SizeInfo describes a selectable image size.
type SizeInfo struct {
	ID          ImageSize
	Name        string
	Description string
}

// AvailableStyles returns the styles a caller may offer for selection.
func AvailableStyles() []StyleInfo {
	return []StyleInfo{
		{ID: ImageStyleVivid, Name: "Vivid", Description: "Highly detailed and vibrant images"},
		{ID: ImageStyleNatural, Name: "Natural", Description: "More realistic and natural looking images"},
	}
}

// AvailableSizes returns the sizes a caller may offer for selection.
func AvailableSizes() []SizeInfo {
	return []SizeInfo{
		{ID: ImageSize1024x1024, Name: "Square (1024×1024)", Description: "Perfect for social media posts"},
		{ID: ImageSize1024x1792, Name: "Portrait (1024×1792)", Description: "Tall images for stories"},
		{ID: ImageSize1792x1024, Name: "Landscape (1792×1024)", Description: "Wide images for banners"},
	}
}
