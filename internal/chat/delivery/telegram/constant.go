package telegram

const (
	logPrefixProcessMessage = "internal.chat.delivery.telegram.processMessage"

	cmdStart = "/start"
	cmdHelp  = "/help"
	cmdNew   = "/new"

	msgStart = "👋 Welcome to *Todo AI Chatbot*!\n\nTell me what you need to do and I will keep track of it.\n\n_Example: \"Add a task to buy groceries tomorrow with high priority\"_"
	msgHelp  = "*How to use:*\n\n• `Add a task to call mom tomorrow`\n• `Show my tasks`\n• `Complete the buy groceries task`\n• `Delete task called gym`\n• `Change the priority of report to high`\n\nSend /new to start a fresh conversation."
	msgNew   = "Started a new conversation."
	msgError = "Something went wrong while processing your request. Please try again."
)
