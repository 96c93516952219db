package constant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"
)

// Fallback replies. The two branches are distinct on purpose: an empty model
// output is not the same condition as a failed call, even though both resolve
// to a supportive message instead of an error.
const (
	FallbackReplyEmptyResult = "I'm here to listen and support you. Could you tell me more about how you're feeling?"

	FallbackReplyCallFailed = "I'm here to support you. Sometimes I have trouble finding the right words, but I want you to know that your feelings are valid and you're not alone."
)

// SupportSystemPromptTemplate is the fixed persona instruction for the
// generation call. The two placeholders are the sentiment label and the
// confidence as a whole percentage.
const SupportSystemPromptTemplate = `You are a compassionate AI mental health support assistant. Your role is to:
- Provide empathetic, non-judgmental support
- Use active listening techniques
- Offer coping strategies and mindfulness exercises
- Encourage professional help when appropriate
- Never diagnose or provide medical advice
- Be warm, understanding, and supportive

Current user sentiment: %s (confidence: %d%%)

Respond with empathy and provide helpful, therapeutic guidance.`

const DefaultSessionTitle = "New conversation"
