package completion

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged unit of a completion request.
type Message struct {
	Role    Role
	Content string
}

func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

const (
	DefaultOpenAIModel = "gpt-4o-2024-05-13"
	DefaultGeminiModel = "gemini-1.5-pro"
)
