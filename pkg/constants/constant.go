package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultPageNum  = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	MaxVideoSize = 1024 * 1024 * 1024
	TempFileDir  = "./tmp/uploads"
)
