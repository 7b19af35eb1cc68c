package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// rollingFileWriter appends to <dir>/<name>.log and, once that file grows past
// maxSize, shifts it to <name>-1.log, <name>-1.log to <name>-2.log and so on,
// keeping at most maxLogs files including the live one.
type rollingFileWriter struct {
	FileDirectory string
	FileName      string

	maxSize int64
	maxLogs int
}

const (
	mb         = 1000000
	maxLogSize = 1 * mb
	maxLogs    = 3
)

func NewRollingFileWriter(fileDir string, fileName string) (rollingFileWriter, error) {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		return rollingFileWriter{}, err
	}

	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		return rollingFileWriter{}, err
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		maxSize:       maxLogSize,
		maxLogs:       maxLogs,
	}, nil
}

func (w rollingFileWriter) getFullFilePath() string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s.log", w.FileName))
}

func (w rollingFileWriter) indexedLog(fileName string, index int) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", fileName, index))
}

// archived log files, oldest (highest index) first
func (w rollingFileWriter) getLogs() ([]string, error) {
	logMatches, err := fs.Glob(os.DirFS(w.FileDirectory), w.FileName+"-*.log")
	if err != nil {
		return nil, err
	}

	// drop anything that isn't name-<n>.log
	logMatches = lo.Filter(logMatches, func(log string, _ int) bool {
		return getLogIndex(w.FileName, log) > 0
	})

	slices.SortFunc(logMatches, func(a, b string) int {
		return getLogIndex(w.FileName, b) - getLogIndex(w.FileName, a)
	})

	return lo.Map(logMatches, func(log string, _ int) string {
		return filepath.Join(w.FileDirectory, log)
	}), nil
}

func (w rollingFileWriter) Write(b []byte) (n int, err error) {
	stats, err := os.Stat(w.getFullFilePath())
	if err == nil && stats.Size() >= w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	mainLogFile, err := os.OpenFile(w.getFullFilePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

func (w rollingFileWriter) rotate() error {
	logMatches, err := w.getLogs()
	if err != nil {
		return err
	}

	// highest index first so renames never collide
	for _, log := range logMatches {
		index := getLogIndex(w.FileName, filepath.Base(log))

		if index+1 >= w.maxLogs {
			if err := os.Remove(log); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(log, w.indexedLog(w.FileName, index+1)); err != nil {
			return err
		}
	}

	if w.maxLogs <= 1 {
		return os.Remove(w.getFullFilePath())
	}

	return os.Rename(w.getFullFilePath(), w.indexedLog(w.FileName, 1))
}

// getLogIndex returns n for name-n.log, or -1 when the file doesn't follow that pattern
func getLogIndex(prefix string, name string) int {
	fileName, _ := strings.CutSuffix(name, ".log")
	indexStr, found := strings.CutPrefix(fileName, prefix+"-")
	if !found {
		return -1
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return -1
	}

	return index
}
