package openrouter

import (
	"fmt"

	"promptdeck-hq/promptdeck/pkg/providers"
)

// demoModels is the fixed fallback model list used in demo mode and when the
// catalog endpoint cannot be reached. The order is stable for the lifetime of
// the process.
var demoModels = []providers.ModelDescriptor{
	{ID: "anthropic/claude-3-opus", Name: "Claude 3 Opus - Anthropic's most powerful model"},
	{ID: "anthropic/claude-3-sonnet", Name: "Claude 3 Sonnet - Balanced model"},
	{ID: "anthropic/claude-3-haiku", Name: "Claude 3 Haiku - Fast model"},
	{ID: "openai/gpt-4o", Name: "GPT-4o - OpenAI's latest model"},
	{ID: "openai/gpt-4-turbo", Name: "GPT-4 Turbo - Powerful model"},
	{ID: "openai/gpt-3.5-turbo", Name: "GPT-3.5 Turbo - Fast and efficient"},
	{ID: "google/gemini-pro", Name: "Gemini Pro - Google's flagship model"},
	{ID: "meta-llama/llama-3-70b-instruct", Name: "Llama 3 70B - Meta's large model"},
}

// fallbackModels returns a copy of the built-in model list so callers cannot
// mutate the shared slice.
func fallbackModels() []providers.ModelDescriptor {
	models := make([]providers.ModelDescriptor, len(demoModels))
	copy(models, demoModels)
	return models
}

// demoCompletion builds the deterministic markdown placeholder returned by
// Complete when no credential is configured. It echoes the prompt and the
// chosen model so the rest of the system can be exercised without network
// access or API cost.
func demoCompletion(prompt, modelName string) string {
	return fmt.Sprintf(`# Response from %s

This is a demo response since no OpenRouter API key was provided. In a production environment, this would be an actual response from the selected AI model.

## About Your Prompt

You asked:

> %s

## Sample Response

Here's how the AI might respond to your prompt:

1. First point about your query
2. Second point with more details
3. Third point with some analysis

### Code Example

`+"```go"+`
func exampleFunction() string {
	fmt.Println("This is just a demonstration")
	return "No actual API call was made"
}
`+"```"+`

**Important note:** To get real responses from AI models, you'll need to:

- Create an account at [OpenRouter](https://openrouter.ai/)
- Get an API key
- Set it as an environment variable or in your config file

*This is just placeholder text to demonstrate formatting.*
`, modelName, prompt)
}
