// Package tui is the tabbed site editor: one blob active at a time, preview
// recomposed on every edit, deploy and export bound to keys.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"resume-folio/client"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))
	inactiveTabStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Foreground(lipgloss.Color("244"))
	statusStyle = lipgloss.NewStyle().
			Faint(true)
	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// deployResultMsg delivers the deploy outcome back into the update loop.
type deployResultMsg struct {
	outcome client.Outcome
}

// App is the editor model following the Elm architecture.
type App struct {
	session *client.Session
	api     *client.API
	dir     string

	tab       client.Tab
	editor    textarea.Model
	spinner   spinner.Model
	deploying bool
	status    string
	statusErr bool

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp builds the editor over an existing session.
func NewApp(session *client.Session, api *client.API, dir string) *App {
	ta := textarea.New()
	ta.SetValue(session.Blob(client.TabHTML))
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &App{
		session: session,
		api:     api,
		dir:     dir,
		tab:     client.TabHTML,
		editor:  ta,
		spinner: sp,
		status:  "tab: switch | ctrl+d: deploy | ctrl+e: export | ctrl+s: save | esc: quit",
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("folio - portfolio editor")
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.editor.SetWidth(msg.Width)
		a.editor.SetHeight(msg.Height - 3)
		return a, nil

	case deployResultMsg:
		a.deploying = false
		if msg.outcome.Ok() {
			a.session.DeployURL = msg.outcome.URL
			a.session.Phase = client.PhaseDeployed
			a.setStatus("deployed: "+msg.outcome.URL, false)
		} else {
			a.setStatus("deploy failed: "+msg.outcome.Message(), true)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.deploying {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			a.stashEditor()
			_ = a.session.Save(a.dir)
			return a, tea.Quit

		case "tab":
			// selecting a tab rebinds the editor; the other blobs are untouched
			a.stashEditor()
			a.tab = a.tab.Next()
			a.editor.SetValue(a.session.Blob(a.tab))
			return a, nil

		case "ctrl+s":
			a.stashEditor()
			if err := a.session.Save(a.dir); err != nil {
				a.setStatus("save failed: "+err.Error(), true)
			} else {
				a.setStatus("saved to "+a.dir, false)
			}
			return a, nil

		case "ctrl+e":
			a.stashEditor()
			path, err := a.session.ExportArchiveFile(a.dir, time.Now())
			if err != nil {
				a.setStatus("export refused: "+err.Error(), true)
			} else {
				a.setStatus("exported "+path, false)
			}
			return a, nil

		case "ctrl+d":
			if a.deploying {
				// single-flight: one deployment at a time
				return a, nil
			}
			a.stashEditor()
			if err := a.session.CanPublish(); err != nil {
				a.setStatus("deploy refused: "+err.Error(), true)
				return a, nil
			}
			a.deploying = true
			a.setStatus("deploying ...", false)
			return a, tea.Batch(a.spinner.Tick, a.deployCmd())
		}
	}

	// everything else edits the active blob
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	a.stashEditor()
	a.writePreview()
	return a, cmd
}

// deployCmd submits the current triple off the update loop.
func (a *App) deployCmd() tea.Cmd {
	site := a.session.Site
	return func() tea.Msg {
		return deployResultMsg{outcome: a.api.Deploy(context.Background(), site)}
	}
}

// stashEditor copies the editor buffer into the active blob.
func (a *App) stashEditor() {
	a.session.SetBlob(a.tab, a.editor.Value())
}

// writePreview recomposes the preview document. Runs on every edit.
func (a *App) writePreview() {
	preview := client.ComposePreview(a.session.Site)
	_ = os.WriteFile(filepath.Join(a.dir, "preview.html"), []byte(preview), 0o644)
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// View implements tea.Model.
func (a *App) View() string {
	var tabs []string
	for _, t := range client.Tabs {
		if t == a.tab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(t.String()))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	status := a.status
	if a.deploying {
		status = a.spinner.View() + " " + status
	}
	switch {
	case a.statusErr:
		status = errStyle.Render(status)
	case a.session.DeployURL != "" && strings.HasPrefix(a.status, "deployed:"):
		status = urlStyle.Render(status)
	default:
		status = statusStyle.Render(status)
	}

	return fmt.Sprintf("%s\n%s\n%s", header, a.editor.View(), status)
}
