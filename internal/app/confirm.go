package app

// Modal is the single active modal context, if any. Exactly one modal owns
// every key press while it is set; keeping it in one field (rather than a
// nullable field per dialog kind) makes the mutual exclusion structural.
type Modal interface {
	modal()
}

func (*Wizard) modal()        {}
func (*ConfirmDialog) modal() {}
func (*ModelForm) modal()     {}
func (*StackForm) modal()     {}
func (*ToolForm) modal()      {}

// ActionKind identifies what a confirmed dialog executes.
type ActionKind int

const (
	ActionDeleteModel ActionKind = iota
	ActionDeleteStack
	ActionDeleteTool
	ActionQuit
)

// PendingAction is the destructive operation a ConfirmDialog guards.
type PendingAction struct {
	Kind ActionKind
	Name string
}

// ConfirmDialog is a blocking yes/no prompt. It starts on "No"; a stray
// Enter must never destroy anything.
type ConfirmDialog struct {
	Title   string
	Message string
	Pending PendingAction

	confirmed bool
}

// NewConfirmDialog builds a dialog guarding the given action.
func NewConfirmDialog(title, message string, pending PendingAction) *ConfirmDialog {
	return &ConfirmDialog{Title: title, Message: message, Pending: pending}
}

// Confirmed reports whether "Yes" is currently selected.
func (d *ConfirmDialog) Confirmed() bool { return d.confirmed }

// SelectConfirm moves the selection to "Yes".
func (d *ConfirmDialog) SelectConfirm() { d.confirmed = true }

// SelectCancel moves the selection to "No".
func (d *ConfirmDialog) SelectCancel() { d.confirmed = false }

// ToggleSelection flips between the two buttons.
func (d *ConfirmDialog) ToggleSelection() { d.confirmed = !d.confirmed }
