package notes

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"github.com/scribe-md/scribe/internal/frontmatter"
	"github.com/scribe-md/scribe/internal/pathutil"
)

type ListItem struct {
	fileName     string
	path         string
	title        string
	subdirectory string
	tags         []string
	size         int64
	modifiedAt   time.Time
	showFullPath bool
}

func (i ListItem) Title() string {
	if i.showFullPath {
		return i.path
	}
	if i.title == "" {
		return strings.TrimSuffix(i.fileName, ".md")
	}
	return i.title
}

func (i ListItem) Description() string {
	if i.showFullPath {
		return fmt.Sprintf(
			"Size: %d bytes, Last Modified: %s",
			i.size,
			i.modifiedAt.Format("Mon, 02 Jan 2006 15:04"),
		)
	}

	description := ""
	if i.subdirectory != "" {
		description += fmt.Sprintf("[%s] ", i.subdirectory)
	}

	if len(i.tags) == 0 {
		description += "No tags"
	} else {
		description += strings.Join(i.tags, ", ")
	}

	return description
}

func (i ListItem) FilterValue() string {
	tags := strings.Join(i.tags, " ")
	return strings.Join(
		[]string{i.Title(), "[" + tags + "]", "[" + i.subdirectory + "]"},
		" ",
	)
}

func (i ListItem) Path() string {
	return i.path
}

func parseNoteFiles(files []string, vault string, showFullPath bool) []ListItem {
	var items []ListItem

	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		meta, _ := frontmatter.Parse(string(content))

		subDir, fileName, err := pathutil.VaultRelativeComponents(vault, path)
		if err != nil {
			continue
		}

		items = append(items, ListItem{
			fileName:     fileName,
			path:         path,
			title:        meta.Title,
			subdirectory: subDir,
			tags:         meta.Tags,
			size:         info.Size(),
			modifiedAt:   info.ModTime(),
			showFullPath: showFullPath,
		})
	}

	return items
}

func castToListItems(items []list.Item) []ListItem {
	var listItems []ListItem
	for _, item := range items {
		if li, ok := item.(ListItem); ok {
			listItems = append(listItems, li)
		}
	}
	return listItems
}
