package integrations

// ImageData is a downloaded image held in memory.
type ImageData struct {
	Content     []byte
	ContentType string
	Index       int
}

// Extension maps the content type to a file extension.
func (i ImageData) Extension() string {
	switch i.ContentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
