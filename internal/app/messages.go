// Package app contains the root bubbletea model and its messages.
package app

import (
	"time"

	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/issue"
	"github.com/llehouerou/folio/internal/media"
)

// FrameMsg drives the page slide animation while a transition is visible.
type FrameMsg time.Time

// IssueReloadedMsg carries a re-parsed issue, or the error that prevented
// reading it. Watched is set for results coming from the file watcher.
type IssueReloadedMsg struct {
	Issue   *issue.Issue
	Err     error
	Watched bool
}

// EmbedsChangedMsg is sent after an attachment was added or removed.
type EmbedsChangedMsg struct {
	PageIndex int
	Embeds    []media.Embed
	Notice    string
}

// NoticeMsg is a transient status line message.
type NoticeMsg string

// ErrorMsg reports a failed background operation.
type ErrorMsg struct {
	Op  errmsg.Op
	Err error
}
