package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultLimit = 10
	MaxLimit     = 100

	MaxCommentLength = 500
	MaxTweetLength   = 280
	MaxTitleLength   = 120

	ApiServiceName = "api"
)
