// quickmemo/app/shell.go

// Package app holds the application state shared by every front-end: the
// editor buffer, the current memo, the memo list and the autosave timer.
package app

import (
	"github.com/rs/zerolog"

	"github.com/ViniZap4/quickmemo/domain"
)

type Screen int

const (
	ScreenEditor Screen = iota
	ScreenList
)

func (s Screen) String() string {
	switch s {
	case ScreenEditor:
		return "editor"
	case ScreenList:
		return "list"
	default:
		return "unknown"
	}
}

// MemoStore persists memos. *filesystem.Storage implements it.
type MemoStore interface {
	Save(memo *domain.Memo) error
	LoadAll() ([]*domain.Memo, error)
	Delete(memo *domain.Memo) error
	Exists(memo *domain.Memo) bool
}

// Scratch is the debounced single-file backup of the editor buffer.
// *autosave.AutoSave implements it.
type Scratch interface {
	MarkDirty()
	CheckAndSave(content string) bool
	Save(content string) bool
	LoadLastSave() (string, bool)
}

// Shell owns all application state. It is not safe for concurrent use;
// front-ends call it from their single update loop.
type Shell struct {
	store        MemoStore
	scratch      Scratch
	log          zerolog.Logger
	defaultTitle string

	title   string
	content string
	// last observed ScratchContent(title, content)
	lastContent string

	current *domain.Memo
	memos   []*domain.Memo
	query   string
	screen  Screen

	queue []Event
}

type Options struct {
	DefaultTitle string
	Logger       zerolog.Logger
}

// New restores the editor buffer from the scratch file when one exists and
// loads the memo list.
func New(store MemoStore, scratch Scratch, opts Options) *Shell {
	if opts.DefaultTitle == "" {
		opts.DefaultTitle = domain.DefaultTitle
	}

	s := &Shell{
		store:        store,
		scratch:      scratch,
		log:          opts.Logger.With().Str("component", "shell").Logger(),
		defaultTitle: opts.DefaultTitle,
		screen:       ScreenEditor,
	}

	if saved, ok := scratch.LoadLastSave(); ok {
		s.title, s.content = domain.SplitScratch(saved)
	} else {
		s.title = s.defaultTitle
	}
	s.lastContent = domain.ScratchContent(s.title, s.content)
	s.current = domain.NewMemo(s.title, s.content)
	s.reloadList()

	return s
}

// Post queues an event for the next Update.
func (s *Shell) Post(ev Event) {
	s.queue = append(s.queue, ev)
}

// Update runs one refresh cycle: queued events in posting order, then change
// detection and the autosave check while the editor is shown.
func (s *Shell) Update() {
	queue := s.queue
	s.queue = nil
	for _, ev := range queue {
		s.dispatch(ev)
	}

	if s.screen == ScreenEditor {
		s.checkChanges()
		s.scratch.CheckAndSave(s.ScratchContent())
	}
}

// Shutdown persists the current memo and forces a final scratch write.
func (s *Shell) Shutdown() {
	s.persistIfExists()
	s.scratch.Save(s.ScratchContent())
}

// SetBuffer replaces the editor contents. Changes are picked up by the
// next Update.
func (s *Shell) SetBuffer(title, content string) {
	s.title = title
	s.content = content
}

func (s *Shell) Title() string {
	return s.title
}

func (s *Shell) Content() string {
	return s.content
}

func (s *Shell) ScratchContent() string {
	return domain.ScratchContent(s.title, s.content)
}

func (s *Shell) Screen() Screen {
	return s.screen
}

func (s *Shell) Current() *domain.Memo {
	return s.current
}

func (s *Shell) Query() string {
	return s.query
}

// Memos returns the list filtered by the current query, newest first.
func (s *Shell) Memos() []*domain.Memo {
	return domain.Filter(s.memos, s.query)
}

func (s *Shell) dispatch(ev Event) {
	switch ev := ev.(type) {
	case NewMemo:
		s.newMemo()
	case ShowList:
		s.showList()
	case DeleteCurrent:
		s.deleteCurrent()
	case SelectMemo:
		s.selectMemo(ev.ID)
	case Back:
		s.screen = ScreenEditor
	case SetQuery:
		s.query = ev.Query
	default:
		s.log.Warn().Msgf("unhandled event %T", ev)
	}
}

func (s *Shell) checkChanges() {
	current := s.ScratchContent()
	if current == s.lastContent {
		return
	}

	s.scratch.MarkDirty()
	s.lastContent = current
	s.current.Update(s.title, s.content)

	if err := s.store.Save(s.current); err != nil {
		s.log.Warn().Err(err).Str("id", s.current.ID).Msg("failed to save memo")
	}
}

// newMemo keeps the current memo unless it is an untouched default buffer.
// A buffer restored from the scratch file counts as touched.
func (s *Shell) newMemo() {
	untouched := s.current.FilePath == "" &&
		s.ScratchContent() == domain.ScratchContent(s.defaultTitle, "")
	if !untouched {
		if err := s.store.Save(s.current); err != nil {
			s.log.Warn().Err(err).Str("id", s.current.ID).Msg("failed to save memo")
		}
	}

	s.resetEditor()
	s.reloadList()
}

func (s *Shell) showList() {
	s.persistIfExists()
	s.screen = ScreenList
	s.reloadList()
}

func (s *Shell) deleteCurrent() {
	if err := s.store.Delete(s.current); err != nil {
		s.log.Warn().Err(err).Str("id", s.current.ID).Msg("failed to delete memo")
	}

	s.resetEditor()
	s.showList()
}

func (s *Shell) selectMemo(id string) {
	for _, m := range s.memos {
		if m.ID != id {
			continue
		}
		s.current = m
		s.title = m.Title
		s.content = m.Content
		s.lastContent = s.ScratchContent()
		break
	}
	s.screen = ScreenEditor
}

// persistIfExists saves the current memo only while its file is on disk, so
// a memo deleted elsewhere is not written back.
func (s *Shell) persistIfExists() {
	if !s.store.Exists(s.current) {
		return
	}
	if err := s.store.Save(s.current); err != nil {
		s.log.Warn().Err(err).Str("id", s.current.ID).Msg("failed to save memo")
	}
}

func (s *Shell) resetEditor() {
	s.title = s.defaultTitle
	s.content = ""
	s.lastContent = s.ScratchContent()
	s.current = domain.NewMemo(s.title, s.content)
}

func (s *Shell) reloadList() {
	memos, err := s.store.LoadAll()
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load memos")
	}
	s.memos = memos
}
