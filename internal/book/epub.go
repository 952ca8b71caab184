package book

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
)

const containerPath = "META-INF/container.xml"

type containerXML struct {
	Rootfiles []struct {
		FullPath string `xml:"full-path,attr"`
	} `xml:"rootfiles>rootfile"`
}

type packageXML struct {
	Metadata struct {
		Title   string `xml:"title"`
		Creator string `xml:"creator"`
	} `xml:"metadata"`
	Manifest struct {
		Items []manifestItem `xml:"item"`
	} `xml:"manifest"`
	Spine struct {
		Itemrefs []struct {
			IDRef string `xml:"idref,attr"`
		} `xml:"itemref"`
	} `xml:"spine"`
}

type manifestItem struct {
	ID        string `xml:"id,attr"`
	Href      string `xml:"href,attr"`
	MediaType string `xml:"media-type,attr"`
}

type ncxXML struct {
	NavPoints []navPoint `xml:"navMap>navPoint"`
}

type navPoint struct {
	Label struct {
		Text string `xml:"text"`
	} `xml:"navLabel"`
	Content struct {
		Src string `xml:"src,attr"`
	} `xml:"content"`
	Children []navPoint `xml:"navPoint"`
}

// ReadEPUB parses a single EPUB file into a Book with normalized chapters.
// Chapters that fail to extract are logged and skipped; only a malformed
// container aborts the whole book.
func ReadEPUB(filePath string) (*Book, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open epub: %w", err)
	}
	defer zr.Close()

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	opfPath, err := rootfilePath(files)
	if err != nil {
		return nil, err
	}

	var pkg packageXML
	if err := unmarshalFile(files, opfPath, &pkg); err != nil {
		return nil, fmt.Errorf("parse package document: %w", err)
	}

	b := &Book{
		Title:    orUnknown(pkg.Metadata.Title),
		Author:   orUnknown(pkg.Metadata.Creator),
		FilePath: path.Base(filePath),
	}

	opfDir := path.Dir(opfPath)
	hrefByID := make(map[string]string, len(pkg.Manifest.Items))
	for _, item := range pkg.Manifest.Items {
		hrefByID[item.ID] = item.Href
	}
	titles := chapterTitles(files, opfDir, pkg.Manifest.Items)

	for i, ref := range pkg.Spine.Itemrefs {
		href, ok := hrefByID[ref.IDRef]
		if !ok {
			slog.Warn("spine item missing from manifest", "book", b.Title, "idref", ref.IDRef)
			continue
		}

		raw, err := readFile(files, resolveHref(opfDir, href))
		if err != nil {
			slog.Warn("skipping unreadable chapter", "book", b.Title, "chapter", ref.IDRef, "error", err)
			continue
		}

		content := NormalizeMarkup(string(raw))
		if len(content) <= MinChapterChars {
			continue
		}

		title := titles[href]
		if title == "" {
			title = fmt.Sprintf("Chapter %d", i+1)
		}

		b.Chapters = append(b.Chapters, Chapter{
			ID:      ref.IDRef,
			Title:   title,
			Order:   i,
			Content: content,
		})
	}

	return b, nil
}

// chapterTitles maps manifest hrefs to navigation titles from the NCX, when
// the book carries one.
func chapterTitles(files map[string]*zip.File, opfDir string, items []manifestItem) map[string]string {
	titles := make(map[string]string)

	var ncxHref string
	for _, item := range items {
		if item.MediaType == "application/x-dtbncx+xml" {
			ncxHref = item.Href
			break
		}
	}
	if ncxHref == "" {
		return titles
	}

	var ncx ncxXML
	if err := unmarshalFile(files, resolveHref(opfDir, ncxHref), &ncx); err != nil {
		return titles
	}

	var walk func(points []navPoint)
	walk = func(points []navPoint) {
		for _, p := range points {
			src := p.Content.Src
			if idx := strings.IndexByte(src, '#'); idx >= 0 {
				src = src[:idx]
			}
			if src != "" && titles[src] == "" {
				titles[src] = strings.TrimSpace(p.Label.Text)
			}
			walk(p.Children)
		}
	}
	walk(ncx.NavPoints)

	return titles
}

func rootfilePath(files map[string]*zip.File) (string, error) {
	var c containerXML
	if err := unmarshalFile(files, containerPath, &c); err != nil {
		return "", fmt.Errorf("parse container descriptor: %w", err)
	}
	if len(c.Rootfiles) == 0 || c.Rootfiles[0].FullPath == "" {
		return "", fmt.Errorf("container descriptor has no rootfile")
	}
	return c.Rootfiles[0].FullPath, nil
}

func unmarshalFile(files map[string]*zip.File, name string, v any) error {
	data, err := readFile(files, name)
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, v)
}

func readFile(files map[string]*zip.File, name string) ([]byte, error) {
	f, ok := files[name]
	if !ok {
		return nil, fmt.Errorf("no such entry: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func resolveHref(opfDir, href string) string {
	if opfDir == "." || opfDir == "" {
		return href
	}
	return path.Join(opfDir, href)
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Unknown"
	}
	return s
}
