package scan

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
)

// sniffBytes is how much of a file is read to decide whether it is a chat
// export.
const sniffBytes = 4096

type FileInfo struct {
	Path  string
	Chat  string // chat name taken from the export file name
	Mtime int64
	Size  int64
}

// Transcripts finds chat exports under root, newest first. Hidden
// directories are skipped. A missing root yields no files.
func Transcripts(root string) ([]FileInfo, error) {
	var files []FileInfo
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable dirs
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".txt") {
			return nil
		}
		if !Sniff(path) {
			return nil
		}
		files = append(files, FileInfo{
			Path:  path,
			Chat:  ChatName(path),
			Mtime: info.ModTime().Unix(),
			Size:  info.Size(),
		})
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	slices.SortStableFunc(files, func(a, b FileInfo) int {
		switch {
		case a.Mtime > b.Mtime:
			return -1
		case a.Mtime < b.Mtime:
			return 1
		}
		return strings.Compare(a.Path, b.Path)
	})
	return files, nil
}

// Sniff reports whether the start of the file contains a message timestamp.
func Sniff(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, sniffBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false
	}
	head := strings.TrimPrefix(string(buf[:n]), "\ufeff")
	_, err = parse.Split(head)
	return !errors.Is(err, parse.ErrNoMessages)
}

// ChatName turns "WhatsApp Chat with Family.txt" into "Family".
func ChatName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, prefix := range []string{"WhatsApp Chat with ", "WhatsApp Chat - "} {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			return rest
		}
	}
	return name
}
