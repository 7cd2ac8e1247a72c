package sources

import "fmt"

// DefaultProfileImage stands in for people without a profile picture.
const DefaultProfileImage = "https://as2.ftcdn.net/v2/jpg/03/31/69/91/1000_F_331699188_lRpvqxO5QRtwOM05gR50ImaaJgBx68vi.jpg"

type Size int

const (
	Small  Size = 185
	Medium Size = 342
	Large  Size = 500
)

// Images builds CDN URLs for relative image paths.
type Images struct {
	BaseURL string
}

var DefaultImages = Images{BaseURL: "https://image.tmdb.org"}

// URL returns the image URL for path at the given size, or "" when the
// entity has no image.
func (i Images) URL(path string, size Size) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/t/p/w%d%s", i.BaseURL, int(size), path)
}

func (i Images) Poster500(path string) string { return i.URL(path, Large) }
func (i Images) Poster342(path string) string { return i.URL(path, Medium) }
func (i Images) Poster185(path string) string { return i.URL(path, Small) }

// Profile is like URL but falls back to DefaultProfileImage.
func (i Images) Profile(path string, size Size) string {
	if path == "" {
		return DefaultProfileImage
	}
	return i.URL(path, size)
}
