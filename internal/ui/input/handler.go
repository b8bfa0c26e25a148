package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rmark/internal/pager"
)

// Keymap binds runes to pager commands.
type Keymap struct {
	Down rune
	Up   rune
	Quit rune
}

// DefaultKeymap is j/k/q.
func DefaultKeymap() Keymap {
	return Keymap{Down: 'j', Up: 'k', Quit: 'q'}
}

// InputHandler converts tcell events to pager commands
type InputHandler struct {
	commandChan chan<- pager.Command
	keys        Keymap
}

// NewInputHandler creates a new input handler
func NewInputHandler(commandChan chan<- pager.Command, keys Keymap) *InputHandler {
	return &InputHandler{
		commandChan: commandChan,
		keys:        keys,
	}
}

// ProcessEvent queues the command for ev, if any. It returns false once the
// event asks the application to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	cmd := ih.Command(key)
	if cmd == pager.CommandNone {
		return true
	}
	ih.commandChan <- cmd
	return cmd != pager.CommandQuit
}

// Command maps a key press to a pager command. Keys outside the keymap map to
// CommandNone, except Ctrl+C which always quits and Ctrl+Z which suspends.
func (ih *InputHandler) Command(ev *tcell.EventKey) pager.Command {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return pager.CommandQuit
	case tcell.KeyCtrlZ:
		return pager.CommandSuspend
	case tcell.KeyRune:
		switch ev.Rune() {
		case ih.keys.Down:
			return pager.CommandMoveDown
		case ih.keys.Up:
			return pager.CommandMoveUp
		case ih.keys.Quit:
			return pager.CommandQuit
		}
	}
	return pager.CommandNone
}
