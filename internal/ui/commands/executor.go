package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ops LinkOps) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Ops: ops,
		},
	}
}

// ExecuteOpen creates and executes an open command
func (e *Executor) ExecuteOpen(url string) tea.Cmd {
	cmd := NewOpenLinkCommand(e.ctx, url)
	return cmd.Execute()
}

// ExecuteCopy creates and executes a copy command
func (e *Executor) ExecuteCopy(url string) tea.Cmd {
	cmd := NewCopyLinkCommand(e.ctx, url)
	return cmd.Execute()
}

// ExecuteExport creates and executes an export command
func (e *Executor) ExecuteExport(url string, data []byte) tea.Cmd {
	cmd := NewExportCodeCommand(e.ctx, url, data)
	return cmd.Execute()
}
