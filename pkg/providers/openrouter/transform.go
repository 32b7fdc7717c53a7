package openrouter

import "promptdeck-hq/promptdeck/pkg/providers"

// OpenRouter API request/response types

// modelsResponse represents the response from the model catalog endpoint.
type modelsResponse struct {
	Data []modelEntry `json:"data"`
}

// modelEntry represents a single model in the catalog response.
type modelEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// chatRequest represents a chat completion request in OpenRouter format.
// OpenRouter follows the OpenAI chat completions shape.
type chatRequest struct {
	Model    string              `json:"model"`
	Messages []providers.Message `json:"messages"`
}

// chatChoice represents a completion choice in the response.
type chatChoice struct {
	Index        int               `json:"index"`
	Message      providers.Message `json:"message"`
	FinishReason string            `json:"finish_reason"`
}

// chatResponse represents a chat completion response.
type chatResponse struct {
	ID      string               `json:"id"`
	Model   string               `json:"model"`
	Created int64                `json:"created"`
	Choices []chatChoice         `json:"choices"`
	Usage   providers.TokenUsage `json:"usage"`
}

// toDescriptors transforms a catalog response into the ordered descriptor list.
// Display names follow the "<name> - <description>" convention; models without
// a description get a fixed placeholder.
func toDescriptors(resp *modelsResponse) []providers.ModelDescriptor {
	descriptors := make([]providers.ModelDescriptor, 0, len(resp.Data))
	for _, m := range resp.Data {
		desc := m.Description
		if desc == "" {
			desc = "No description"
		}
		name := m.Name
		if name == "" {
			name = m.ID
		}
		descriptors = append(descriptors, providers.ModelDescriptor{
			ID:   m.ID,
			Name: name + " - " + desc,
		})
	}
	return descriptors
}
