package tui

import "tasktrack/internal/tui/theme"

var (
	// Status bar
	StatusBarStyle = theme.StatusBar

	// Help text
	HelpStyle = theme.HelpHint

	// Toasts
	ToastSuccessStyle = theme.ToastSuccess
	ToastErrorStyle   = theme.ToastError
)
