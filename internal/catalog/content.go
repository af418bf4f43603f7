package catalog

import (
	"regexp"
	"strings"
)

// BlockKind classifies a block of post content.
type BlockKind string

const (
	BlockParagraph  BlockKind = "paragraph"
	BlockHeading    BlockKind = "heading"
	BlockSubheading BlockKind = "subheading"
	BlockBullets    BlockKind = "bullets"
	BlockNumbered   BlockKind = "numbered"
	BlockQuote      BlockKind = "quote"
)

// Block is one rendered unit of a post. List blocks carry Items, the others Text.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Text  string    `json:"text,omitempty"`
	Items []string  `json:"items,omitempty"`
}

var numberedItem = regexp.MustCompile(`^\d+\.\s+`)

// ParseContent splits line-oriented post content into blocks:
//
//	## heading      ### subheading
//	- bullet        1. numbered item
//	> quote         anything else is a paragraph
//
// Consecutive items of the same list kind form one block. Blank lines only
// separate blocks. No inline markup is interpreted.
func ParseContent(content string) []Block {
	var blocks []Block

	appendItem := func(kind BlockKind, item string) {
		if n := len(blocks); n > 0 && blocks[n-1].Kind == kind {
			blocks[n-1].Items = append(blocks[n-1].Items, item)
			return
		}
		blocks = append(blocks, Block{Kind: kind, Items: []string{item}})
	}

	lastBlank := false
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		if strings.TrimSpace(line) == "" {
			lastBlank = true
			continue
		}
		listBreak := lastBlank
		lastBlank = false

		switch {
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{Kind: BlockSubheading, Text: strings.TrimSpace(line[4:])})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{Kind: BlockHeading, Text: strings.TrimSpace(line[3:])})
		case strings.HasPrefix(line, "- "):
			if listBreak {
				blocks = append(blocks, Block{Kind: BlockBullets})
			}
			appendItem(BlockBullets, strings.TrimSpace(line[2:]))
		case numberedItem.MatchString(line):
			if listBreak {
				blocks = append(blocks, Block{Kind: BlockNumbered})
			}
			appendItem(BlockNumbered, strings.TrimSpace(numberedItem.ReplaceAllString(line, "")))
		case strings.HasPrefix(line, "> "):
			blocks = append(blocks, Block{Kind: BlockQuote, Text: strings.TrimSpace(line[2:])})
		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: strings.TrimSpace(line)})
		}
	}

	return blocks
}
