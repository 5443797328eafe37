package usecase

// Log prefixes
const (
	LogPrefixSendMessage        = "internal.chat.usecase.SendMessage"
	LogPrefixListConversations  = "internal.chat.usecase.ListConversations"
	LogPrefixGetConversation    = "internal.chat.usecase.GetConversation"
	LogPrefixDeleteConversation = "internal.chat.usecase.DeleteConversation"
)
