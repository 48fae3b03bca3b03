package menu

// Top-level labels of the base menu set.
const (
	LabelShell  = "◆"
	LabelApp    = "@app"
	LabelFile   = "File"
	LabelEdit   = "Edit"
	LabelView   = "View"
	LabelGo     = "Go"
	LabelWindow = "Window"
	LabelHelp   = "Help"
)

// DefaultAppTitle names the app menu when no window is active.
const DefaultAppTitle = "Finder"

// Command names understood by the shell's command table.
const (
	CmdClose       = "window.close"
	CmdMinimize    = "window.minimize"
	CmdZoom        = "window.zoom"
	CmdMinimizeAll = "window.minimize-all"
	CmdHideOthers  = "window.hide-others"
	CmdBringAll    = "window.bring-all"
	CmdCopy        = "edit.copy"
	CmdLock        = "shell.lock"
	CmdAbout       = "shell.about"
	CmdSpotlight   = "shell.spotlight"
	CmdQuit        = "shell.quit"
)

// Reserved reports whether label names a base menu other than the app
// menu. An app titled with a reserved label would shadow that menu.
func Reserved(label string) bool {
	for _, desc := range BaseMenus() {
		if desc.Label != LabelApp && desc.Label == label {
			return true
		}
	}
	return false
}

// BaseMenus returns the menus shown regardless of which app is active.
// LabelApp is a placeholder renamed to the active app's title on resolve.
func BaseMenus() []Descriptor {
	return []Descriptor{
		{Label: LabelShell, Items: []Item{
			{Label: "About This Desktop", Command: CmdAbout},
			{Label: "Spotlight…", Shortcut: "Cmd+Space", Command: CmdSpotlight},
			Separator(),
			{Label: "Lock Screen", Shortcut: "Cmd+L", Command: CmdLock},
			{Label: "Log Out…", Shortcut: "Cmd+Shift+Q", Command: CmdQuit},
		}},
		{Label: LabelApp, Items: []Item{
			{Label: "Hide Others", Shortcut: "Cmd+Alt+H", Command: CmdHideOthers, RequiresWindow: true},
			Separator(),
			{Label: "Quit", Shortcut: "Cmd+Q", Command: CmdClose, RequiresWindow: true},
		}},
		{Label: LabelFile, Items: []Item{
			{Label: "New Window", Shortcut: "Cmd+N", Disabled: true},
			{Label: "Close Window", Shortcut: "Cmd+W", Command: CmdClose, RequiresWindow: true},
		}},
		{Label: LabelEdit, Items: []Item{
			{Label: "Undo", Shortcut: "Cmd+Z", Disabled: true},
			{Label: "Redo", Shortcut: "Cmd+Shift+Z", Disabled: true},
			Separator(),
			{Label: "Copy", Shortcut: "Cmd+C", Command: CmdCopy, RequiresWindow: true},
			{Label: "Select All", Shortcut: "Cmd+A", Disabled: true},
		}},
		{Label: LabelView, Items: []Item{
			{Label: "Enter Full Screen", Shortcut: "Cmd+Ctrl+F", Command: CmdZoom, RequiresWindow: true},
		}},
		{Label: LabelGo, Items: []Item{
			{ID: "about", Label: "About Me"},
			{ID: "projects", Label: "Projects"},
			{ID: "contact", Label: "Contact"},
			Separator(),
			{ID: "finder", Label: "Applications", Shortcut: "Cmd+Shift+A"},
		}},
		{Label: LabelWindow, Items: []Item{
			{Label: "Minimize", Shortcut: "Cmd+M", Command: CmdMinimize, RequiresWindow: true},
			{Label: "Zoom", Command: CmdZoom, RequiresWindow: true},
			{Label: "Minimize All", Shortcut: "Cmd+Alt+M", Command: CmdMinimizeAll},
			{Label: "Hide Others", Command: CmdHideOthers, RequiresWindow: true},
			Separator(),
			{Label: "Bring All to Front", Command: CmdBringAll},
		}},
		{Label: LabelHelp, Items: []Item{
			{ID: "help", Label: "termdesk Help", Shortcut: "Cmd+?"},
			{ID: "contact", Label: "Contact the Author"},
		}},
	}
}
