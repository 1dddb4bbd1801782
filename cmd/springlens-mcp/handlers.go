package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"springlens/internal/analyzer"
	"springlens/internal/manifest"
	"springlens/internal/maven"
)

// requireProjectPath validates the project_path argument. It returns an
// error text result (not an error) when the argument is missing or does not
// point at a directory, so a bad call never becomes a protocol fault.
func requireProjectPath(request mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	root, err := request.RequireString("project_path")
	if err != nil || root == "" {
		return "", errorResult("Error: project_path parameter is required")
	}
	info, statErr := os.Stat(root)
	if statErr != nil || !info.IsDir() {
		return "", errorResult(fmt.Sprintf("Error: project_path %s is not a directory", root))
	}
	return root, nil
}

// handleJwtClaims implements the analyze_jwt_claims tool
func handleJwtClaims(a *analyzer.Analyzer, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, bad := requireProjectPath(request)
		if bad != nil {
			return bad, nil
		}
		report, err := a.JwtClaims(root)
		if err != nil {
			logger.Error().Err(err).Msg("JwtClaims failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}
		return jsonResult(report), nil
	}
}

// handleResponseWrapper implements the analyze_response_wrapper tool
func handleResponseWrapper(a *analyzer.Analyzer, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, bad := requireProjectPath(request)
		if bad != nil {
			return bad, nil
		}
		report, err := a.ResponseWrapper(root)
		if err != nil {
			logger.Error().Err(err).Msg("ResponseWrapper failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}
		return jsonResult(report), nil
	}
}

// handleEntityRelationships implements the analyze_entity_relationships tool
func handleEntityRelationships(a *analyzer.Analyzer, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, bad := requireProjectPath(request)
		if bad != nil {
			return bad, nil
		}
		entity, err := request.RequireString("entity_name")
		if err != nil || entity == "" {
			return errorResult("Error: entity_name parameter is required"), nil
		}
		report, err := a.EntityRelationships(root, entity)
		if err != nil {
			logger.Error().Err(err).Str("entity", entity).Msg("EntityRelationships failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}
		return jsonResult(report), nil
	}
}

// handleControllerEndpoints implements the analyze_controller_endpoints tool
func handleControllerEndpoints(a *analyzer.Analyzer, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, bad := requireProjectPath(request)
		if bad != nil {
			return bad, nil
		}
		controller, err := request.RequireString("controller_name")
		if err != nil || controller == "" {
			return errorResult("Error: controller_name parameter is required"), nil
		}
		report, err := a.ControllerEndpoints(root, controller)
		if err != nil {
			logger.Error().Err(err).Str("controller", controller).Msg("ControllerEndpoints failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}
		return jsonResult(report), nil
	}
}

// handleRepositoryMethods implements the analyze_repository_methods tool
func handleRepositoryMethods(a *analyzer.Analyzer, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, bad := requireProjectPath(request)
		if bad != nil {
			return bad, nil
		}
		repository, err := request.RequireString("repository_name")
		if err != nil || repository == "" {
			return errorResult("Error: repository_name parameter is required"), nil
		}
		report, err := a.RepositoryMethods(root, repository)
		if err != nil {
			logger.Error().Err(err).Str("repository", repository).Msg("RepositoryMethods failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}
		return jsonResult(report), nil
	}
}

// handleServiceDependencies implements the analyze_service_dependencies tool
func handleServiceDependencies(a *analyzer.Analyzer, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, bad := requireProjectPath(request)
		if bad != nil {
			return bad, nil
		}
		service, err := request.RequireString("service_name")
		if err != nil || service == "" {
			return errorResult("Error: service_name parameter is required"), nil
		}
		report, err := a.ServiceDependencies(root, service)
		if err != nil {
			logger.Error().Err(err).Str("service", service).Msg("ServiceDependencies failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}
		return jsonResult(report), nil
	}
}

// handleNamingStrategy implements the analyze_naming_strategy tool
func handleNamingStrategy(a *analyzer.Analyzer, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, bad := requireProjectPath(request)
		if bad != nil {
			return bad, nil
		}
		packagePath := request.GetString("package_path", "")
		report, err := a.NamingStrategy(root, packagePath)
		if err != nil {
			logger.Error().Err(err).Msg("NamingStrategy failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}
		return jsonResult(report), nil
	}
}

// handleMissingTestProperties implements the find_missing_test_properties tool
func handleMissingTestProperties(a *analyzer.Analyzer, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, bad := requireProjectPath(request)
		if bad != nil {
			return bad, nil
		}
		report, err := a.MissingTestProperties(root)
		if err != nil {
			logger.Error().Err(err).Msg("MissingTestProperties failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}
		return jsonResult(report), nil
	}
}

// handleExclusionCandidates implements the find_exclusion_candidates tool
func handleExclusionCandidates(a *analyzer.Analyzer, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, bad := requireProjectPath(request)
		if bad != nil {
			return bad, nil
		}
		report, err := a.ExclusionCandidates(root)
		if err != nil {
			logger.Error().Err(err).Msg("ExclusionCandidates failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}
		return jsonResult(report), nil
	}
}

// handleAnalyzePom implements the analyze_pom tool
func handleAnalyzePom(logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, bad := requireProjectPath(request)
		if bad != nil {
			return bad, nil
		}
		// Parse failures come back inside the report, not as an error.
		return jsonResult(manifest.ParsePom(root)), nil
	}
}

// handleCompileProject implements the compile_project tool
func handleCompileProject(invoker *maven.Invoker, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, bad := requireProjectPath(request)
		if bad != nil {
			return bad, nil
		}
		outcome := invoker.Compile(ctx, root)
		if !outcome.Success {
			logger.Warn().Str("dir", root).Msg("Compile failed")
		}
		return jsonResult(outcome), nil
	}
}

// handleRunTests implements the run_tests tool
func handleRunTests(invoker *maven.Invoker, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, bad := requireProjectPath(request)
		if bad != nil {
			return bad, nil
		}
		class := request.GetString("class_name", "")
		method := request.GetString("method_name", "")
		if method != "" && class == "" {
			return errorResult("Error: method_name requires class_name"), nil
		}
		outcome := invoker.RunTests(ctx, root, class, method)
		if !outcome.Success {
			logger.Warn().Str("dir", root).Msg("Test run failed")
		}
		return jsonResult(outcome), nil
	}
}
