package frontmatter

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"
)

// Recognized fence styles for a leading metadata block.
var fences = []string{"---", "+++"}

// Strip removes a leading frontmatter block before rendering. If the
// document opens with a fence line, everything through the matching closing
// fence line goes; an opening fence with no closing fence means the whole
// document is metadata and the result is empty. Documents without a fence
// pass through unchanged. Total for any input, including the empty string.
func Strip(text string) string {
	for _, fence := range fences {
		if !strings.HasPrefix(text, fence) {
			continue
		}

		nl := strings.Index(text, "\n")
		if nl < 0 {
			return ""
		}

		rest := text[nl+1:]
		offset := nl + 1
		for {
			end := strings.Index(rest, "\n")
			line := rest
			if end >= 0 {
				line = rest[:end]
			}
			if strings.TrimRight(line, "\r") == fence {
				if end < 0 {
					return ""
				}
				return strings.TrimLeft(text[offset+end+1:], " \t\r\n")
			}
			if end < 0 {
				return ""
			}
			offset += end + 1
			rest = rest[end+1:]
		}
	}
	return text
}

// Metadata is the parsed frontmatter of a note.
type Metadata struct {
	Title  string
	Date   time.Time
	Tags   []string
	Fields map[string]any
}

// Parse splits a document into its metadata and body. Notes without
// frontmatter yield empty metadata and the document unchanged. Date-like
// fields accept any format dateparse understands.
func Parse(text string) (Metadata, string) {
	meta := Metadata{Fields: map[string]any{}}

	raw, ok := block(text)
	if !ok {
		return meta, text
	}
	body := Strip(text)

	if err := yaml.Unmarshal([]byte(raw), &meta.Fields); err != nil {
		return Metadata{Fields: map[string]any{}}, body
	}

	if title, ok := meta.Fields["title"].(string); ok {
		meta.Title = strings.TrimSpace(title)
	}
	switch date := meta.Fields["date"].(type) {
	case time.Time:
		meta.Date = date
	case string:
		if parsed, err := dateparse.ParseAny(date); err == nil {
			meta.Date = parsed
		}
	}
	switch tags := meta.Fields["tags"].(type) {
	case []any:
		for _, t := range tags {
			if s, ok := t.(string); ok {
				meta.Tags = append(meta.Tags, s)
			}
		}
	case string:
		for _, t := range strings.Fields(tags) {
			meta.Tags = append(meta.Tags, t)
		}
	}

	return meta, body
}

// block extracts the raw metadata text between the fences.
func block(text string) (string, bool) {
	for _, fence := range fences {
		if !strings.HasPrefix(text, fence) {
			continue
		}
		nl := strings.Index(text, "\n")
		if nl < 0 {
			return "", false
		}
		rest := text[nl+1:]
		var b strings.Builder
		for {
			end := strings.Index(rest, "\n")
			line := rest
			if end >= 0 {
				line = rest[:end]
			}
			if strings.TrimRight(line, "\r") == fence {
				return b.String(), true
			}
			if end < 0 {
				return "", false
			}
			b.WriteString(line)
			b.WriteString("\n")
			rest = rest[end+1:]
		}
	}
	return "", false
}
