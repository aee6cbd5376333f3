package server

import (
	"regexp"

	"cyclels/internal/config"
	"cyclels/internal/registry"
	"cyclels/internal/script"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var (
	lineBreak   = regexp.MustCompile(`\r?\n`)
	wordPattern = regexp.MustCompile(`\w+`)
)

// completionItems lists every registry entry, AUTO included.
func completionItems(reg *registry.Registry) []protocol.CompletionItem {
	kind := protocol.CompletionItemKindText
	commands := reg.Commands()
	items := make([]protocol.CompletionItem, 0, len(commands))
	for _, c := range commands {
		detail := c.Description
		items = append(items, protocol.CompletionItem{
			Label:  c.Name,
			Kind:   &kind,
			Detail: &detail,
			Data:   c.ID,
		})
	}
	return items
}

// textDocumentCompletion offers the whole registry regardless of position.
func (s *Server) textDocumentCompletion(
	context *glsp.Context,
	params *protocol.CompletionParams,
) (any, error) {
	return s.completions, nil
}

func (s *Server) completionItemResolve(
	context *glsp.Context,
	params *protocol.CompletionItem,
) (*protocol.CompletionItem, error) {
	return params, nil
}

func (s *Server) textDocumentHover(
	context *glsp.Context,
	params *protocol.HoverParams,
) (*protocol.Hover, error) {
	doc, err := s.manager.GetDocument(params.TextDocument.URI)
	if err != nil {
		log.Debugf("hover: %v", err)
		return nil, nil
	}

	lines := lineBreak.Split(doc, -1)
	if int(params.Position.Line) >= len(lines) {
		return nil, nil
	}

	word := wordAt(lines[params.Position.Line], int(params.Position.Character))
	cmd, ok := s.registry.Lookup(word)
	if !ok {
		return nil, nil
	}

	kind := protocol.MarkupKindMarkdown
	if s.currentConfig().HoverFormat == config.HoverPlainText {
		kind = protocol.MarkupKindPlainText
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  kind,
			Value: cmd.Description,
		},
	}, nil
}

// wordAt returns the word touching the UTF-16 character offset, either
// containing it or ending right before it.
func wordAt(line string, character int) string {
	for _, loc := range wordPattern.FindAllStringIndex(line, -1) {
		start := script.UTF16Column(line, loc[0])
		end := script.UTF16Column(line, loc[1])
		if character >= start && character <= end {
			return line[loc[0]:loc[1]]
		}
	}
	return ""
}
