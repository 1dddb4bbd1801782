package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createJwtClaimsTool returns the analyze_jwt_claims tool definition
func createJwtClaimsTool() mcp.Tool {
	return mcp.NewTool("analyze_jwt_claims",
		mcp.WithDescription("Report which JWT claims the project's token utility and filter classes read (standard accessors plus custom claim lookups)"),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Absolute path to the Maven project root"),
		),
	)
}

// createResponseWrapperTool returns the analyze_response_wrapper tool definition
func createResponseWrapperTool() mcp.Tool {
	return mcp.NewTool("analyze_response_wrapper",
		mcp.WithDescription("Detect a global ResponseBodyAdvice wrapper, its payload field name, and the JSON-path prefix tests should use"),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Absolute path to the Maven project root"),
		),
	)
}

// createEntityRelationshipsTool returns the analyze_entity_relationships tool definition
func createEntityRelationshipsTool() mcp.Tool {
	return mcp.NewTool("analyze_entity_relationships",
		mcp.WithDescription("List one JPA entity's to-one/to-many relationships, inheritance, and a suggested fixture creation order"),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Absolute path to the Maven project root"),
		),
		mcp.WithString("entity_name",
			mcp.Required(),
			mcp.Description("Entity class name, e.g. Order"),
		),
	)
}

// createControllerEndpointsTool returns the analyze_controller_endpoints tool definition
func createControllerEndpointsTool() mcp.Tool {
	return mcp.NewTool("analyze_controller_endpoints",
		mcp.WithDescription("List one controller's base path and mapped endpoints (verb, path, handler), and whether authentication is required"),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Absolute path to the Maven project root"),
		),
		mcp.WithString("controller_name",
			mcp.Required(),
			mcp.Description("Controller class name, e.g. OrderController"),
		),
	)
}

// createRepositoryMethodsTool returns the analyze_repository_methods tool definition
func createRepositoryMethodsTool() mcp.Tool {
	return mcp.NewTool("analyze_repository_methods",
		mcp.WithDescription("List one repository's declared query methods (find/count/exists/delete prefixes) and whether a soft-delete filter applies"),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Absolute path to the Maven project root"),
		),
		mcp.WithString("repository_name",
			mcp.Required(),
			mcp.Description("Repository interface name, e.g. OrderRepository"),
		),
	)
}

// createServiceDependenciesTool returns the analyze_service_dependencies tool definition
func createServiceDependenciesTool() mcp.Tool {
	return mcp.NewTool("analyze_service_dependencies",
		mcp.WithDescription("List one service's injected repositories, public methods, thrown exception types, and transactional boundary"),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Absolute path to the Maven project root"),
		),
		mcp.WithString("service_name",
			mcp.Required(),
			mcp.Description("Service class name, e.g. OrderService"),
		),
	)
}

// createNamingStrategyTool returns the analyze_naming_strategy tool definition
func createNamingStrategyTool() mcp.Tool {
	return mcp.NewTool("analyze_naming_strategy",
		mcp.WithDescription("Tally column/table naming-convention markers across the production tree and report the majority strategy"),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Absolute path to the Maven project root"),
		),
		mcp.WithString("package_path",
			mcp.Description("Optional package to restrict the scan to, e.g. com.example.domain"),
		),
	)
}

// createMissingTestPropertiesTool returns the find_missing_test_properties tool definition
func createMissingTestPropertiesTool() mcp.Tool {
	return mcp.NewTool("find_missing_test_properties",
		mcp.WithDescription("Cross-reference every @Value-injected property key against application-test.properties and report the gaps"),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Absolute path to the Maven project root"),
		),
	)
}

// createExclusionCandidatesTool returns the find_exclusion_candidates tool definition
func createExclusionCandidatesTool() mcp.Tool {
	return mcp.NewTool("find_exclusion_candidates",
		mcp.WithDescription("Find bean classes tied to external providers (aws, kafka, redis, ...) that lack @Profile scoping"),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Absolute path to the Maven project root"),
		),
	)
}

// createAnalyzePomTool returns the analyze_pom tool definition
func createAnalyzePomTool() mcp.Tool {
	return mcp.NewTool("analyze_pom",
		mcp.WithDescription("Report the Spring Boot and Java versions from pom.xml and the import/test-library families they imply"),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Absolute path to the Maven project root"),
		),
	)
}

// createCompileProjectTool returns the compile_project tool definition
func createCompileProjectTool() mcp.Tool {
	return mcp.NewTool("compile_project",
		mcp.WithDescription("Run mvn clean test-compile and return a structured pass/fail summary with up to 10 compile errors"),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Absolute path to the Maven project root"),
		),
	)
}

// createRunTestsTool returns the run_tests tool definition
func createRunTestsTool() mcp.Tool {
	return mcp.NewTool("run_tests",
		mcp.WithDescription("Run mvn test (optionally filtered to one class or method) and return structured counts and failure excerpts"),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Absolute path to the Maven project root"),
		),
		mcp.WithString("class_name",
			mcp.Description("Optional test class to run, e.g. OrderServiceTest"),
		),
		mcp.WithString("method_name",
			mcp.Description("Optional test method within class_name (runs as Class#method)"),
		),
	)
}
