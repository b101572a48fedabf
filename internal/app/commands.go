package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/config"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/issue"
	"github.com/llehouerou/folio/internal/media"
	"github.com/llehouerou/folio/internal/navigator"
	"github.com/llehouerou/folio/internal/state"
)

// FrameCmd returns a command that sends FrameMsg after one frame.
func FrameCmd() tea.Cmd {
	return tea.Tick(navigator.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// WaitForReload returns a command that waits for the next watcher result.
func WaitForReload(ch <-chan issue.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return IssueReloadedMsg{Issue: r.Issue, Err: r.Err, Watched: true}
	}
}

// ReloadCmd re-reads the issue at path.
func ReloadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		iss, err := issue.Load(path)
		return IssueReloadedMsg{Issue: iss, Err: err}
	}
}

// attachTarget identifies the page an attach prompt was opened for.
type attachTarget struct {
	IssuePath string
	PageID    string
	PageIndex int
}

// AttachCmd classifies the file at path and stores it on the target page.
func AttachCmd(st state.Interface, target attachTarget, path string) tea.Cmd {
	return func() tea.Msg {
		e, err := media.Open(config.ExpandPath(path))
		if err != nil {
			return ErrorMsg{Op: errmsg.OpMediaAttach, Err: err}
		}
		e, err = st.AddEmbed(context.Background(), target.IssuePath, target.PageID, e)
		if err != nil {
			return ErrorMsg{Op: errmsg.OpMediaAttach, Err: err}
		}
		slog.Info("media attached",
			slog.String("page", target.PageID),
			slog.String("kind", string(e.Kind)),
			slog.String("path", e.Path))
		return embedsChanged(st, target, "Attached "+e.Label())
	}
}

// RemoveCmd drops the most recent attachment of the target page.
func RemoveCmd(st state.Interface, target attachTarget) tea.Cmd {
	return func() tea.Msg {
		removed, err := st.RemoveLastEmbed(context.Background(), target.IssuePath, target.PageID)
		if err != nil {
			return ErrorMsg{Op: errmsg.OpMediaRemove, Err: err}
		}
		if removed == nil {
			return NoticeMsg("Nothing to remove on this page")
		}
		slog.Info("media removed", slog.String("page", target.PageID), slog.String("path", removed.Path))
		return embedsChanged(st, target, "Removed "+removed.Label())
	}
}

func embedsChanged(st state.Interface, target attachTarget, notice string) tea.Msg {
	embeds, err := st.Embeds(target.IssuePath, target.PageID)
	if err != nil {
		return ErrorMsg{Op: errmsg.OpMediaLoad, Err: fmt.Errorf("%s: %w", target.PageID, err)}
	}
	return EmbedsChangedMsg{PageIndex: target.PageIndex, Embeds: embeds, Notice: notice}
}
