// quickmemo/app/events.go
package app

// Event is a user intent. Events are queued with Post and applied in order
// by the next Update.
type Event interface {
	event()
}

// NewMemo starts a fresh memo in the editor.
type NewMemo struct{}

// ShowList switches to the memo list.
type ShowList struct{}

// DeleteCurrent removes the memo open in the editor and shows the list.
type DeleteCurrent struct{}

// SelectMemo opens the listed memo with the given id in the editor.
type SelectMemo struct {
	ID string
}

// Back returns from the list to the editor without changing the memo.
type Back struct{}

// SetQuery sets the list search query.
type SetQuery struct {
	Query string
}

func (NewMemo) event()       {}
func (ShowList) event()      {}
func (DeleteCurrent) event() {}
func (SelectMemo) event()    {}
func (Back) event()          {}
func (SetQuery) event()      {}
