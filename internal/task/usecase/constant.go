package usecase

// Log prefixes
const (
	LogPrefixCreate      = "internal.task.usecase.Create"
	LogPrefixList        = "internal.task.usecase.List"
	LogPrefixDetail      = "internal.task.usecase.Detail"
	LogPrefixUpdate      = "internal.task.usecase.Update"
	LogPrefixComplete    = "internal.task.usecase.Complete"
	LogPrefixDelete      = "internal.task.usecase.Delete"
	LogPrefixFindByTitle = "internal.task.usecase.FindByTitle"
	LogPrefixCalendar    = "internal.task.usecase.syncCalendar"
)
