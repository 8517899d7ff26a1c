package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

const defaulBatchSize = 100

// Walker ...
type Walker struct {
	Directory  string
	BatchSize  int
	batchIndex int
	batch      []string
	// When descending down a dir recursively, a number of files proportional to the maximum depth must be held open
	// The depth first approach is preferred for most cases
	recFiles []*os.File
}

func openDirectory(dir string) (*os.File, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("Cannot walk %s: not a directory", dir)
	}
	file, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// isDirSymlink reports whether info is a symlink pointing at a directory.
// Such links are neither counted nor followed.
func isDirSymlink(path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}
	target, err := os.Stat(path)
	return err == nil && target.IsDir()
}

func (provider *Walker) batchSize() int {
	if provider.BatchSize < 0 {
		return -1
	} else if provider.BatchSize == 0 {
		// Do not allow zero batches
		return defaulBatchSize
	}
	return provider.BatchSize
}

// Prepare starts a new walk for NextFile
func (provider *Walker) Prepare() error {
	provider.Close()
	file, err := openDirectory(provider.Directory)
	if err != nil {
		return err
	}
	provider.recFiles = []*os.File{file}
	provider.batch = nil
	provider.batchIndex = 0
	return nil
}

// Close releases all directory handles held by an unfinished walk
func (provider *Walker) Close() {
	for _, dir := range provider.recFiles {
		dir.Close()
	}
	provider.recFiles = nil
}

// FetchDirMetadata counts all file entries below the directory.
// Every call walks the tree again.
func (provider *Walker) FetchDirMetadata(updateHandler MetadataUpdateHandler) Metadata {
	var total Metadata
	if updateHandler == nil {
		updateHandler = func(Metadata) {}
	}
	dir, err := openDirectory(provider.Directory)
	if err != nil {
		log.Debugf("Cannot count files in %s: %v", provider.Directory, err)
		updateHandler(total)
		return total
	}
	total = provider.fetchDirMetadata(dir, total, updateHandler)
	updateHandler(total)
	return total
}

func (provider *Walker) fetchDirMetadata(dir *os.File, total Metadata, updateHandler MetadataUpdateHandler) Metadata {
	defer dir.Close()
	for {
		filenames, err := dir.Readdirnames(provider.batchSize())
		if len(filenames) < 1 {
			if err != nil && err != io.EOF {
				log.Debugf("Skipping rest of %s: %v", dir.Name(), err)
			}
			break
		}
		for _, name := range filenames {
			f := filepath.Join(dir.Name(), name)
			fileInfo, err := os.Lstat(f)
			if err != nil {
				continue
			}
			if fileInfo.IsDir() {
				subDir, err := os.Open(f)
				if err != nil {
					log.Debugf("Skipping directory %s: %v", f, err)
					continue
				}
				total = provider.fetchDirMetadata(subDir, total, updateHandler)
				continue
			}
			if isDirSymlink(f, fileInfo) {
				continue
			}
			total.Files++
			total.Bytes += fileInfo.Size()
		}
		updateHandler(total)
	}
	return total
}

// NextFile returns the next file of the walk started by Prepare, or io.EOF
func (provider *Walker) NextFile() (string, error) {
	for provider.batchIndex >= len(provider.batch) {
		if len(provider.recFiles) < 1 {
			return "", io.EOF
		}
		currentFile := provider.recFiles[len(provider.recFiles)-1]
		provider.batch = provider.nextBatch(currentFile)
		provider.batchIndex = 0
	}
	ret := provider.batch[provider.batchIndex]
	provider.batchIndex++
	return ret, nil
}

// nextBatch lists the next names of currentFile. Subdirectories are pushed
// and descended into on the following batch.
func (provider *Walker) nextBatch(currentFile *os.File) []string {
	filenames, err := currentFile.Readdirnames(provider.batchSize())
	if len(filenames) < 1 {
		if err != nil && err != io.EOF {
			log.Debugf("Skipping rest of %s: %v", currentFile.Name(), err)
		}
		currentFile.Close()
		provider.recFiles = provider.recFiles[:len(provider.recFiles)-1]
		return nil
	}
	var selectedFiles []string
	for _, name := range filenames {
		f := filepath.Join(currentFile.Name(), name)
		fileInfo, err := os.Lstat(f)
		if err != nil {
			log.Debug(err)
			continue
		}
		if fileInfo.IsDir() {
			subDir, err := os.Open(f)
			if err != nil {
				log.Debugf("Skipping directory %s: %v", f, err)
				continue
			}
			provider.recFiles = append(provider.recFiles, subDir)
			continue
		}
		if isDirSymlink(f, fileInfo) {
			log.Debugf("Not following directory link %s", f)
			continue
		}
		selectedFiles = append(selectedFiles, f)
	}
	return selectedFiles
}
