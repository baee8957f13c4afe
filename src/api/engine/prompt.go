package engine

import (
	"fmt"
	"strings"
)

// ComposePrompt renders the exact prompt template clients depend on.
// Tool names appear in stored order; an empty set renders as [].
// Fields are interpolated verbatim, no escaping.
func ComposePrompt(name, role, description string, toolNames []string, task string) string {
	return fmt.Sprintf(
		"System: You are %s, a %s. %s. You have access to these tools: [%s].\nUser Task: %s",
		name, role, description, strings.Join(toolNames, ", "), task,
	)
}
