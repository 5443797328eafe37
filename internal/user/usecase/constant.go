package usecase

// Log prefixes
const (
	LogPrefixRegister = "internal.user.usecase.Register"
	LogPrefixLogin    = "internal.user.usecase.Login"
	LogPrefixRefresh  = "internal.user.usecase.Refresh"
	LogPrefixMe       = "internal.user.usecase.Me"
)
