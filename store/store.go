package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pastel-todo/model"
)

const (
	// AppDirName is the per-user configuration subdirectory.
	AppDirName = "pastel_todo"
	// TasksFileName is the task file inside AppDirName.
	TasksFileName = "tasks.tsv"

	fieldCount = 4
)

// DefaultPath returns <user config dir>/pastel_todo/tasks.tsv.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, TasksFileName), nil
}

// File persists tasks at Path and satisfies app.Saver.
type File struct {
	Path string
}

// Save writes tasks with Autosave.
func (f File) Save(tasks []model.Task) error {
	return Autosave(f.Path, tasks)
}

// Load reads tasks from path.
// If the file does not exist, it returns an empty task list.
func Load(path string) ([]model.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Task{}, nil
		}
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Autosave writes safely using temporary file + atomic rename.
// The previous file content is kept as path + ".bak".
func Autosave(path string, tasks []model.Task) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	if err := backup(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(Encode(tasks)); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// Encode renders one line per task:
// done(0|1) TAB folder TAB created_at(RFC 3339) TAB text.
func Encode(tasks []model.Task) []byte {
	var buf bytes.Buffer
	for _, t := range tasks {
		flag := "0"
		if t.Done {
			flag = "1"
		}
		buf.WriteString(flag)
		buf.WriteByte('\t')
		buf.WriteString(sanitizeField(t.Folder))
		buf.WriteByte('\t')
		buf.WriteString(t.CreatedAt.Format(time.RFC3339Nano))
		buf.WriteByte('\t')
		buf.WriteString(sanitizeText(t.Text))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Decode parses the line format written by Encode.
// Lines without four fields are skipped; tabs past the third belong to the
// text. An unparsable timestamp falls back to the current time. Lines have
// no length limit.
func Decode(r io.Reader) ([]model.Task, error) {
	tasks := []model.Task{}
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if task, ok := decodeLine(line); ok {
				tasks = append(tasks, task)
			}
		}
		if errors.Is(err, io.EOF) {
			return tasks, nil
		}
		if err != nil {
			return tasks, err
		}
	}
}

func decodeLine(line string) (model.Task, bool) {
	parts := strings.SplitN(line, "\t", fieldCount)
	if len(parts) != fieldCount {
		return model.Task{}, false
	}
	created, err := time.Parse(time.RFC3339Nano, parts[2])
	if err != nil {
		created = time.Now()
	}
	return model.Task{
		Done:      parts[0] == "1",
		Folder:    parts[1],
		CreatedAt: created.Local(),
		Text:      parts[3],
	}, true
}

func sanitizeField(s string) string {
	return strings.NewReplacer("\t", " ", "\r", " ", "\n", " ").Replace(s)
}

func sanitizeText(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func backup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.WriteFile(path+".bak", data, 0o644)
}
