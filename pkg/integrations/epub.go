package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-shiori/go-epub"
	"github.com/google/uuid"
	"github.com/kerbaras/movies/pkg/data"
)

// Section is one chapter of a favorites export.
type Section struct {
	Title string
	Items []data.Item
	// Images holds posters or profile pictures keyed by item id. Items
	// without an entry are written without a picture.
	Images map[string]ImageData
}

type EPubBuilder struct {
	outputDir string
}

func NewEPubBuilder(outputDir string) *EPubBuilder {
	if outputDir == "" {
		outputDir, _ = os.MkdirTemp("", "movies-epub-*")
	}
	return &EPubBuilder{outputDir: outputDir}
}

// ExportFavorites compiles the sections into a single EPUB file and returns
// its path.
func (p *EPubBuilder) ExportFavorites(title string, sections []Section) (string, error) {
	total := 0
	for _, s := range sections {
		total += len(s.Items)
	}
	if total == 0 {
		return "", fmt.Errorf("no favorites to export")
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	// go-epub copies images from disk, so posters are staged first.
	stageDir, err := os.MkdirTemp("", "movies-epub-images-*")
	if err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stageDir)

	e, err := epub.NewEpub(title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}
	e.SetAuthor("TMDB")
	e.SetLang("en")
	e.SetIdentifier("urn:uuid:" + uuid.NewString())
	e.SetDescription(fmt.Sprintf("%d favorites exported on %s", total, time.Now().Format(time.DateOnly)))

	for _, section := range sections {
		if len(section.Items) == 0 {
			continue
		}
		if err := p.addSection(e, stageDir, section); err != nil {
			return "", fmt.Errorf("failed to add %s: %w", section.Title, err)
		}
	}

	outputPath := filepath.Join(p.outputDir, sanitizeFilename(title)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

func (p *EPubBuilder) addSection(e *epub.Epub, stageDir string, section Section) error {
	var body strings.Builder
	body.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(section.Title)))

	for _, item := range section.Items {
		id := item.ID()
		body.WriteString(`<div class="entry">` + "\n")
		body.WriteString(fmt.Sprintf("<h2>%s</h2>\n", html.EscapeString(entryHeading(item))))

		if img, ok := section.Images[id]; ok && len(img.Content) > 0 {
			name := fmt.Sprintf("%s-%s%s", sanitizeFilename(section.Title), sanitizeFilename(id), img.Extension())
			staged := filepath.Join(stageDir, name)
			if err := os.WriteFile(staged, img.Content, 0644); err != nil {
				return fmt.Errorf("failed to stage image for %s: %w", id, err)
			}
			internalPath, err := e.AddImage(staged, name)
			if err != nil {
				return fmt.Errorf("failed to add image for %s: %w", id, err)
			}
			body.WriteString(fmt.Sprintf(
				`<p><img src="%s" alt="%s" style="max-width:100%%;height:auto;"/></p>`+"\n",
				internalPath, html.EscapeString(item.Title()),
			))
		}

		if text := entryText(item); text != "" {
			body.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(text)))
		}
		body.WriteString("</div>\n")
	}

	_, err := e.AddSection(body.String(), section.Title, "", "")
	return err
}

func entryHeading(item data.Item) string {
	heading := item.Title()
	if heading == "" {
		heading = "#" + item.ID()
	}
	if year := item.Year(); year != "" {
		heading = fmt.Sprintf("%s (%s)", heading, year)
	}
	return heading
}

func entryText(item data.Item) string {
	if overview := item.String("overview"); overview != "" {
		return overview
	}
	if bio := item.String("biography"); bio != "" {
		return bio
	}
	return item.String("known_for_department")
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	return result
}
