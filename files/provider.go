package files

// Metadata ...
type Metadata struct {
	Files int64
	Bytes int64
}

// MetadataUpdateHandler receives interim totals while a provider is counting
type MetadataUpdateHandler func(interim Metadata)

// FileProvider ...
type FileProvider interface {
	Prepare() error
	NextFile() (string, error)
	FetchDirMetadata(updateHandler MetadataUpdateHandler) Metadata
}
