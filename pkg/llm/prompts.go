package llm

import (
	"fmt"
	"slices"
	"strings"
)

// MaxFileChars is how much of each repository file is quoted in a prompt.
const MaxFileChars = 15000

// SystemPrompt sets the writing persona for every request.
const SystemPrompt = `You are an elite technical writer creating world-class GitHub README documentation.
Your goal is to write content that looks like it belongs in a top-tier open source library.
- Be comprehensive and detailed.
- Use professional, active voice.
- Use emojis effectively but professionally.
- Write actual code examples, not placeholders.
- If context is missing, infer reasonable defaults based on the tech stack.
- Analyze the provided file contents (package manifests, config files, source code) to write deep technical descriptions.
- Extract installation commands, scripts, and usage patterns directly from the file contents.`

// sectionPrompts holds the task text per section.
//
//nolint:gochecknoglobals // static prompt table
var sectionPrompts = map[Section]string{
	SectionRefine: `Refine the following content based on the user's instruction.
Maintain the markdown formatting.
Return ONLY the updated content.`,

	SectionFull: `Generate a complete, professional README.md for this project.
The output must be comprehensive and detail-oriented. Do NOT generate generic placeholders.
Include:
- Eye-catching title with centered alignment and a project slogan
- **About**: A compelling, multi-paragraph introduction explaining the "Why" and "How".
- **Key Features**: A detailed list of features with emojis.
- **Architecture**: (Optional) If code structure allows, explain the technical design.
- **Installation**: Step-by-step commands derived from the package files.
- **Usage**: Real-world code examples.
- **Contributing**: Standard open-source guidelines.
- **License**: The detected license.`,

	SectionDescription: `Write a high-impact, professional introduction for this project.
- **Hook**: Start with a powerful opening sentence.
- **Expand**: Use the file contents and tech stack to infer capabilities beyond the short description.
- **Detail**: Write 2-3 substantial paragraphs explaining the problem this project solves and its unique approach.
- **Tone**: Exciting and developer-focused.
Format the answer exactly as:
Tagline: <one sentence slogan>
Description: <the paragraphs>`,

	SectionFeatures: `Generate a list of 6-10 key features for this project.
- Analyze the file structure to identify actual features (e.g., "Authentication", "API Rate Limiting", "Dark Mode").
- Format strictly as:
- ✨ **Feature Name** - Detailed description of what it does and why it matters.
- Use diverse and relevant emojis.`,

	SectionInstallation: `Generate a robust installation guide.
- Analyze 'package.json', 'requirements.txt', or 'go.mod' to determine exact dependencies.
- Include prerequisites (runtime versions).
- Provide clear, copy-pasteable bash blocks for installation.
- Include environment variable setup if config files are detected.`,

	SectionUsage: `Generate professional usage documentation.
- Create REALISTIC code examples based on the analyzed code (e.g., a component for a UI library, commands for a CLI).
- Show "Basic Usage" and "Advanced Usage".
- Include expected output comments in code blocks.`,

	SectionAPI: `Generate detailed API documentation.
- Infer endpoints from route files.
- Use Markdown tables for parameters: | Param | Type | Description |
- Provide JSON request/response examples.`,

	SectionContributing: `Generate professional contributing guidelines.
- Detailed steps for forking, cloning, and branching.
- Mention code style tooling if detected.
- Encourage PRs.`,
}

// SectionPrompt returns the task text for a section. Unknown sections get
// the description prompt.
func SectionPrompt(section Section) (prompt string) {
	prompt, ok := sectionPrompts[section]
	if !ok {
		prompt = sectionPrompts[SectionDescription]
	}
	return prompt
}

// BuildPrompt renders the user turn for a request. Refine requests with both
// existing content and an instruction quote the content instead of the
// project context.
func BuildPrompt(req GenerateRequest) (prompt string) {
	if req.Section == SectionRefine && req.ExistingContent != "" && req.Instruction != "" {
		prompt = fmt.Sprintf("Refine the following content:\n```markdown\n%s\n```\n\nInstruction: %s\n\n%s",
			req.ExistingContent, req.Instruction, sectionPrompts[SectionRefine])
		return prompt
	}

	prompt = fmt.Sprintf("%s\n\n%s\n\nGenerate the content in markdown format. Be professional, concise, and engaging.",
		buildContext(req), SectionPrompt(req.Section))
	return prompt
}

func buildContext(req GenerateRequest) (context string) {
	var b strings.Builder

	name := req.ProjectName
	if name == "" {
		name = "Unnamed Project"
	}

	description := req.ProjectDescription
	if description == "" {
		description = "A software project"
	}

	stack := "Not specified"
	if len(req.TechStack) > 0 {
		stack = strings.Join(req.TechStack, ", ")
	}

	fmt.Fprintf(&b, "Project Name: %s\nProject Description: %s\nTech Stack: %s\n", name, description, stack)
	if req.AdditionalContext != "" {
		fmt.Fprintf(&b, "Additional Context: %s", req.AdditionalContext)
	}

	if len(req.FileContents) > 0 {
		b.WriteString("\n\n## Repository File Contents\nUse these files to understand the project structure, dependencies, and usage:\n")

		names := make([]string, 0, len(req.FileContents))
		for filename := range req.FileContents {
			names = append(names, filename)
		}
		slices.Sort(names)

		for _, filename := range names {
			fmt.Fprintf(&b, "\n### %s\n```\n%s\n```\n", filename, truncate(req.FileContents[filename], MaxFileChars))
		}
	}

	context = b.String()
	return context
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) (result string) {
	result = s
	if len(s) <= n {
		return result
	}

	runes := []rune(s)
	if len(runes) > n {
		result = string(runes[:n])
	}
	return result
}
