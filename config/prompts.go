package config

import "fmt"

// assistantPromptTemplate frames every AI fallback request as a short reply
// from a confectionery shop consultant.
const assistantPromptTemplate = `Ты — вежливый консультант в кондитерской. Очень кратко (1–%d предложения) ответь на запрос клиента: "%s"`

// BuildAssistantPrompt returns the prompt sent to the generative model for a
// customer message, limited to maxSentences sentences.
func BuildAssistantPrompt(userMessage string, maxSentences int) string {
	return fmt.Sprintf(assistantPromptTemplate, maxSentences, userMessage)
}
