package server

import (
	"fmt"
	"sync"

	"cyclels/internal/config"
	"cyclels/internal/manager"
	"cyclels/internal/registry"
	"cyclels/internal/script"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const Name = "cycle-ls"

var log = commonlog.GetLogger("cycle-ls.server")

type Server struct {
	handler     *protocol.Handler
	registry    *registry.Registry
	checker     *script.Checker
	manager     *manager.DocumentManager
	completions []protocol.CompletionItem
	version     string

	mu     sync.RWMutex
	config config.Config
}

func New(reg *registry.Registry, version string) (*Server, error) {
	checker, err := script.NewChecker(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare checker: %w", err)
	}

	ls := &Server{
		registry:    reg,
		checker:     checker,
		manager:     manager.NewDocumentManager(),
		completions: completionItems(reg),
		version:     version,
		config:      config.Default(),
	}
	ls.handler = &protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentCompletion: ls.textDocumentCompletion,
		CompletionItemResolve:  ls.completionItemResolve,
		TextDocumentHover:      ls.textDocumentHover,
	}
	return ls, nil
}

// Handler exposes the protocol handler, mostly for tests.
func (s *Server) Handler() *protocol.Handler {
	return s.handler
}

// RunStdio serves the language server protocol over stdin/stdout.
func (s *Server) RunStdio() error {
	return server.NewServer(s.handler, Name, false).RunStdio()
}

func (s *Server) currentConfig() config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *Server) setConfig(cfg config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
}
