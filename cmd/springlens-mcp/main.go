package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"springlens/internal/analyzer"
	"springlens/internal/config"
	"springlens/internal/maven"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	configPath := os.Getenv("SPRINGLENS_CONFIG")
	if configPath == "" {
		configPath = "springlens.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Console-only logger; kept quiet by default so it does not clutter the
	// MCP stdio channel.
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:       arbor_models.LogWriterTypeConsole,
		TimeFormat: "15:04:05",
	}).WithLevelFromString(cfg.Log.Level)

	analyzerService := analyzer.NewAnalyzer(logger)
	invoker := maven.NewInvoker(logger).WithTimeouts(
		time.Duration(cfg.Maven.CompileTimeoutSeconds)*time.Second,
		time.Duration(cfg.Maven.TestTimeoutSeconds)*time.Second,
	)

	mcpServer := server.NewMCPServer(
		"springlens",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	// Extraction tools
	mcpServer.AddTool(createJwtClaimsTool(), handleJwtClaims(analyzerService, logger))
	mcpServer.AddTool(createResponseWrapperTool(), handleResponseWrapper(analyzerService, logger))
	mcpServer.AddTool(createEntityRelationshipsTool(), handleEntityRelationships(analyzerService, logger))
	mcpServer.AddTool(createControllerEndpointsTool(), handleControllerEndpoints(analyzerService, logger))
	mcpServer.AddTool(createRepositoryMethodsTool(), handleRepositoryMethods(analyzerService, logger))
	mcpServer.AddTool(createServiceDependenciesTool(), handleServiceDependencies(analyzerService, logger))
	mcpServer.AddTool(createNamingStrategyTool(), handleNamingStrategy(analyzerService, logger))
	mcpServer.AddTool(createMissingTestPropertiesTool(), handleMissingTestProperties(analyzerService, logger))
	mcpServer.AddTool(createExclusionCandidatesTool(), handleExclusionCandidates(analyzerService, logger))
	mcpServer.AddTool(createAnalyzePomTool(), handleAnalyzePom(logger))

	// Build tools
	mcpServer.AddTool(createCompileProjectTool(), handleCompileProject(invoker, logger))
	mcpServer.AddTool(createRunTestsTool(), handleRunTests(invoker, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
