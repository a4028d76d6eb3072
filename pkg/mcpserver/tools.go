package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

func listProjectsTool() mcp.Tool {
	return mcp.NewTool("list_projects",
		mcp.WithDescription("Lists the Stitch projects available to the configured account."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func getProjectTool() mcp.Tool {
	return mcp.NewTool("get_project",
		mcp.WithDescription("Returns a Stitch project including its design theme."),
		mcp.WithString("project_id", mcp.Required(), mcp.Description("Project id or projects/{id} resource name")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func listScreensTool() mcp.Tool {
	return mcp.NewTool("list_screens",
		mcp.WithDescription("Lists the generated screens of a Stitch project."),
		mcp.WithString("project_id", mcp.Required(), mcp.Description("Project id or projects/{id} resource name")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func getScreenTool() mcp.Tool {
	return mcp.NewTool("get_screen",
		mcp.WithDescription("Returns screen metadata: title, code and screenshot download URLs, theme."),
		mcp.WithString("project_id", mcp.Required(), mcp.Description("Project id")),
		mcp.WithString("screen_id", mcp.Required(), mcp.Description("Screen id")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func generateScreenTool() mcp.Tool {
	return mcp.NewTool("generate_screen",
		mcp.WithDescription("Generates new screens in a Stitch project from a text prompt."),
		mcp.WithString("project_id", mcp.Required(), mcp.Description("Project id")),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("Description of the screen to generate")),
		mcp.WithString("device_type", mcp.Description("Target device"), mcp.Enum("MOBILE", "DESKTOP", "TABLET")),
		mcp.WithString("model_id", mcp.Description("Generation model id (optional)")),
	)
}

func extractDesignContextTool() mcp.Tool {
	return mcp.NewTool("extract_design_context",
		mcp.WithDescription("Extracts the design system of a screen (colors, fonts, spacing, layouts) as JSON."),
		mcp.WithString("project_id", mcp.Required(), mcp.Description("Project id")),
		mcp.WithString("screen_id", mcp.Required(), mcp.Description("Screen id")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func getDesignMarkdownTool() mcp.Tool {
	return mcp.NewTool("get_design_markdown",
		mcp.WithDescription("Extracts the design system of a screen and renders it as a markdown report with CSS variables."),
		mcp.WithString("project_id", mcp.Required(), mcp.Description("Project id")),
		mcp.WithString("screen_id", mcp.Required(), mcp.Description("Screen id")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}
