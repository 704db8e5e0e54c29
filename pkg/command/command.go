// Package command extracts the command label from a chat message.
package command

import (
	"strings"

	"github.com/samber/lo"
)

type Label string

const (
	Default Label = "default"
	Code    Label = "code"
	Menu    Label = "menu"
	Q       Label = "q"
)

// Marker prefixes every recognised command.
const Marker = "/"

type Command struct {
	Label   Label
	Content string
}

// Keyword binds a label to the spelling users type after the marker.
type Keyword struct {
	Label Label
	Word  string
}

// DefaultKeywords are matched in this order; the first prefix match wins.
func DefaultKeywords() []Keyword {
	return []Keyword{
		{Label: Code, Word: "code"},
		{Label: Menu, Word: "menu"},
		{Label: Q, Word: "q"},
	}
}

type Parser struct {
	keywords []Keyword
}

func NewParser(keywords []Keyword) *Parser {
	return &Parser{
		keywords: keywords,
	}
}

// Parse matches "<marker><keyword>" at the very start of text, case
// sensitive and without a word boundary, so "/query" resolves to Q with
// content "uery". Without a match the label is Default and the content is
// the trimmed text.
func (p *Parser) Parse(text string) Command {
	kw, ok := lo.Find(p.keywords, func(k Keyword) bool {
		return k.Word != "" && strings.HasPrefix(text, Marker+k.Word)
	})
	if !ok {
		return Command{
			Label:   Default,
			Content: strings.TrimSpace(text),
		}
	}

	return Command{
		Label:   kw.Label,
		Content: strings.TrimSpace(strings.TrimPrefix(text, Marker+kw.Word)),
	}
}
