package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// LinkOps performs the side effects behind link commands
type LinkOps interface {
	OpenURL(url string) error
	CopyURL(url string) error
	ExportPNG(url string, data []byte) (string, error)
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ops LinkOps
}

// LinkOpenedMsg contains the result of handing a link to the browser
type LinkOpenedMsg struct {
	URL string
	Err error
}

// LinkCopiedMsg contains the result of a clipboard write
type LinkCopiedMsg struct {
	URL string
	Err error
}

// CodeExportedMsg contains the result of writing a QR code image
type CodeExportedMsg struct {
	URL  string
	Path string
	Err  error
}

// OpenLinkCommand opens a link in the system browser
type OpenLinkCommand struct {
	ctx *CommandContext
	url string
}

// NewOpenLinkCommand creates a new open command
func NewOpenLinkCommand(ctx *CommandContext, url string) *OpenLinkCommand {
	return &OpenLinkCommand{
		ctx: ctx,
		url: url,
	}
}

// Execute returns a command that opens the link off the update loop
func (c *OpenLinkCommand) Execute() tea.Cmd {
	if c.url == "" {
		return nil
	}
	return func() tea.Msg {
		return LinkOpenedMsg{URL: c.url, Err: c.ctx.Ops.OpenURL(c.url)}
	}
}

// CopyLinkCommand copies a link to the clipboard
type CopyLinkCommand struct {
	ctx *CommandContext
	url string
}

// NewCopyLinkCommand creates a new copy command
func NewCopyLinkCommand(ctx *CommandContext, url string) *CopyLinkCommand {
	return &CopyLinkCommand{
		ctx: ctx,
		url: url,
	}
}

// Execute returns a command that writes the link to the clipboard
func (c *CopyLinkCommand) Execute() tea.Cmd {
	if c.url == "" {
		return nil
	}
	return func() tea.Msg {
		return LinkCopiedMsg{URL: c.url, Err: c.ctx.Ops.CopyURL(c.url)}
	}
}

// ExportCodeCommand writes an encoded QR code image to disk
type ExportCodeCommand struct {
	ctx  *CommandContext
	url  string
	data []byte
}

// NewExportCodeCommand creates a new export command for PNG data encoding url
func NewExportCodeCommand(ctx *CommandContext, url string, data []byte) *ExportCodeCommand {
	return &ExportCodeCommand{
		ctx:  ctx,
		url:  url,
		data: data,
	}
}

// Execute returns a command that saves the image
func (c *ExportCodeCommand) Execute() tea.Cmd {
	if len(c.data) == 0 {
		return nil
	}
	return func() tea.Msg {
		path, err := c.ctx.Ops.ExportPNG(c.url, c.data)
		return CodeExportedMsg{URL: c.url, Path: path, Err: err}
	}
}
