package app

import (
	"errors"
	"log"
	"strings"
	"time"

	"pastel-todo/model"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidName  = errors.New("folder name must not be empty")
	ErrInvalidTask  = errors.New("task text must not be empty")
)

// Saver persists the whole task sequence.
type Saver interface {
	Save(tasks []model.Task) error
}

// Service holds the ordered task sequence and the current folder.
// Every mutation of stored tasks is followed by a synchronous save whose
// failure is logged and otherwise ignored.
type Service struct {
	tasks         []model.Task
	folder        string
	defaultFolder string
	saver         Saver
}

// NewService creates a service over a copy of tasks. The current folder
// starts at the first task's folder, or defaultFolder when tasks is empty.
// A nil saver keeps everything in memory.
func NewService(tasks []model.Task, defaultFolder string, saver Saver) *Service {
	defaultFolder = strings.TrimSpace(defaultFolder)
	if defaultFolder == "" {
		defaultFolder = model.DefaultFolder
	}
	s := &Service{
		tasks:         copyTasks(tasks),
		defaultFolder: defaultFolder,
		saver:         saver,
	}
	s.folder = s.fallbackFolder()
	return s
}

// Tasks returns all tasks in insertion order as a copy.
func (s *Service) Tasks() []model.Task {
	return copyTasks(s.tasks)
}

// Len returns the total number of tasks across folders.
func (s *Service) Len() int {
	return len(s.tasks)
}

// Task returns the task at an absolute store index.
func (s *Service) Task(index int) (model.Task, bool) {
	if index < 0 || index >= len(s.tasks) {
		return model.Task{}, false
	}
	return s.tasks[index], true
}

// Folder returns the current folder.
func (s *Service) Folder() string {
	return s.folder
}

// SetFolder switches the current folder. Folders need not exist beforehand.
func (s *Service) SetFolder(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	s.folder = name
	return nil
}

// FilteredIndices maps row N of a folder view to its store index.
// The result keeps insertion order and is the only place folder
// membership is evaluated.
func (s *Service) FilteredIndices(folder string) []int {
	indexes := make([]int, 0)
	for i := range s.tasks {
		if s.tasks[i].InFolder(folder) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// FolderTasks returns the filtered view of folder.
func (s *Service) FolderTasks(folder string) []model.Task {
	indexes := s.FilteredIndices(folder)
	out := make([]model.Task, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, s.tasks[idx])
	}
	return out
}

// Add appends a new open task to folder, stamped with the local time.
func (s *Service) Add(text, folder string) (model.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Task{}, ErrInvalidTask
	}
	task := model.Task{
		Text:      text,
		Done:      false,
		Folder:    folder,
		CreatedAt: time.Now(),
	}
	s.tasks = append(s.tasks, task)
	s.persist()
	return task, nil
}

// MarkDone sets the done flag of the task at an absolute store index.
func (s *Service) MarkDone(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return ErrTaskNotFound
	}
	s.tasks[index].Done = true
	s.persist()
	return nil
}

// DeleteByFolderRank removes the task at the 1-based rank of folder's
// filtered view. Out-of-range ranks remove nothing.
func (s *Service) DeleteByFolderRank(folder string, rank int) bool {
	indexes := s.FilteredIndices(folder)
	if rank < 1 || rank > len(indexes) {
		return false
	}
	idx := indexes[rank-1]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.persist()
	return true
}

// DeleteFolder removes every task whose folder matches name ignoring case.
// An empty name targets the current folder. When the current folder is the
// one deleted, it moves to the first remaining task's folder or the default.
func (s *Service) DeleteFolder(name string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.folder
	}

	kept := make([]model.Task, 0, len(s.tasks))
	removed := 0
	for _, t := range s.tasks {
		if model.SameFolder(t.Folder, name) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if removed > 0 {
		s.tasks = kept
		s.persist()
	}

	if model.SameFolder(s.folder, name) {
		s.folder = s.fallbackFolder()
	}
	return removed
}

func (s *Service) fallbackFolder() string {
	if len(s.tasks) > 0 {
		return s.tasks[0].Folder
	}
	return s.defaultFolder
}

func (s *Service) persist() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.Tasks()); err != nil {
		log.Printf("save tasks: %v", err)
	}
}

func copyTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}
