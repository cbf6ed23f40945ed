// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/Setheum-Labs/solang/internal/lsp"
	"github.com/Setheum-Labs/solang/internal/sema"
)

const lsName = "solang" // Name identifier for the language server

var handler protocol.Handler // Protocol handler instance (wired up below)

func main() {
	targetName := flag.String("target", "substrate", "target platform: substrate, ewasm, generic or solana")
	flag.Parse()

	target, ok := sema.ParseTarget(*targetName)
	if !ok {
		log.Printf("unknown target ‘%s’\n", *targetName)
		os.Exit(2)
	}

	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	solangHandler := lsp.NewSolangHandler(target)

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     solangHandler.Initialize,
		Initialized:                    solangHandler.Initialized,
		Shutdown:                       solangHandler.Shutdown,
		SetTrace:                       solangHandler.SetTrace,
		TextDocumentDidOpen:            solangHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           solangHandler.TextDocumentDidClose,
		TextDocumentDidChange:          solangHandler.TextDocumentDidChange,
		TextDocumentCompletion:         solangHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: solangHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Solang LSP server...")

	// Start the server over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Solang LSP server:", err)
		os.Exit(1)
	}
}
