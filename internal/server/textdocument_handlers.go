package server

import (
	"fmt"

	"cyclels/internal/script"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	log.Debugf("DidOpen: %s", uri)

	s.manager.UpdateDocument(uri, params.TextDocument.Text)
	s.validate(context, uri, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	log.Debugf("DidChange: %s", uri)

	doc, err := s.manager.ApplyChanges(uri, params.ContentChanges)
	if err != nil {
		return fmt.Errorf("unexpected error during edit: %w", err)
	}
	s.validate(context, uri, doc)
	return nil
}

func (s *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	log.Debugf("Closed %s", uri)

	s.manager.Release(uri)
	publishDiagnostics(context, uri, []protocol.Diagnostic{})
	return nil
}

// validate re-checks the whole document and replaces its published diagnostics.
func (s *Server) validate(context *glsp.Context, uri string, doc string) {
	diagnostics := s.checker.Check(doc)
	log.Debugf("%s: %d problem(s)", uri, len(diagnostics))
	publishDiagnostics(
		context,
		uri,
		toProtocolDiagnostics(diagnostics, s.currentConfig().MaxNumberOfProblems),
	)
}

// publishDiagnostics always notifies, so an empty list clears stale problems.
func publishDiagnostics(
	context *glsp.Context,
	uri string,
	diagnostics []protocol.Diagnostic,
) {
	context.Notify("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func toProtocolDiagnostics(diagnostics []script.Diagnostic, limit int) []protocol.Diagnostic {
	if limit > 0 && len(diagnostics) > limit {
		diagnostics = diagnostics[:limit]
	}

	source := Name
	out := make([]protocol.Diagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		severity := protocol.DiagnosticSeverity(d.Severity)
		out = append(out, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      protocol.UInteger(d.Range.Start.Line),
					Character: protocol.UInteger(d.Range.Start.Character),
				},
				End: protocol.Position{
					Line:      protocol.UInteger(d.Range.End.Line),
					Character: protocol.UInteger(d.Range.End.Character),
				},
			},
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}
	return out
}
