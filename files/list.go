package files

import (
	"io"
	"os"
)

// List provides a fixed set of files.
// Every listed path counts as a file, even if it does not exist.
type List struct {
	Files []string
	index int
}

// Prepare ...
func (provider *List) Prepare() error {
	provider.index = 0
	return nil
}

// FetchDirMetadata ...
func (provider *List) FetchDirMetadata(updateHandler MetadataUpdateHandler) Metadata {
	var total Metadata
	for _, file := range provider.Files {
		total.Files++
		if fileInfo, err := os.Lstat(file); err == nil {
			total.Bytes += fileInfo.Size()
		}
		if updateHandler != nil {
			updateHandler(total)
		}
	}
	return total
}

// NextFile ...
func (provider *List) NextFile() (string, error) {
	if provider.index >= len(provider.Files) {
		return "", io.EOF
	}
	file := provider.Files[provider.index]
	provider.index++
	return file, nil
}
