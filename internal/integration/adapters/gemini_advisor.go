package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAdvisor implements the AdvisorService using Google Gemini directly,
// for deployments without an automation webhook. It asks the model for the
// same reply shape the webhook produces so the normalizer serves both.
type GeminiAdvisor struct {
	apiKey    string
	modelName string
}

// NewGeminiAdvisor creates a new Gemini advisor instance.
func NewGeminiAdvisor(apiKey, modelName string) *GeminiAdvisor {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiAdvisor{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// Name identifies the advisor in logs.
func (a *GeminiAdvisor) Name() string {
	return "gemini"
}

// IsAvailable checks if the Gemini advisor is properly configured.
func (a *GeminiAdvisor) IsAvailable() bool {
	return a.apiKey != ""
}

// RequestPlan asks Gemini for a savings plan and returns the decoded reply.
func (a *GeminiAdvisor) RequestPlan(ctx context.Context, prompt string) (map[string]any, error) {
	if !a.IsAvailable() {
		return nil, fmt.Errorf("gemini advisor is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(a.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(a.buildPrompt(prompt)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return a.parseResponse(resp)
}

// buildPrompt wraps the user query with the reply-shape instructions.
func (a *GeminiAdvisor) buildPrompt(userQuery string) string {
	var sb strings.Builder

	sb.WriteString(`Eres un asesor financiero personal. El usuario describe una meta de ahorro en lenguaje natural y tu calculas un plan realista.

CONSULTA DEL USUARIO:
`)
	sb.WriteString(userQuery)
	sb.WriteString(`

Responde con UN objeto JSON con exactamente estas claves:
{
  "Cantidad mensual de ahorro requerida": <numero en pesos, sin separadores>,
  "Fecha proyectada de finalización": "dd/mm/yyyy",
  "Recomendaciones de reducción de gastos": {
    "<categoria>": { "sugerencia": "<recomendacion en español>", "categoria": "<nombre de la categoria>" }
  }
}

IMPORTANTE:
- Todas las recomendaciones en español.
- Incluye entre 3 y 5 categorias de reduccion de gastos.

FORMATO DE RESPUESTA: Retorna solo el objeto JSON, sin texto adicional.
`)

	return sb.String()
}

// parseResponse extracts the JSON object from the Gemini response.
func (a *GeminiAdvisor) parseResponse(resp *genai.GenerateContentResponse) (map[string]any, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	decoder := json.NewDecoder(strings.NewReader(textContent))
	decoder.UseNumber()

	var reply map[string]any
	if err := decoder.Decode(&reply); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	return reply, nil
}
