package rgui

// Hotkey is a key with the modifiers that must be held with it.
type Hotkey struct {
	Key       KeyCode
	Modifiers ModifiersState
}

// ActionCondition returns true if the action can be executed.
type ActionCondition func() bool

// ActionEntry holds a registered action with its hotkey and message.
type ActionEntry struct {
	Name      string          // Action name for debugging
	Hotkey    Hotkey          // Key press that triggers the action
	Message   Message         // Emitted with the triggering KeyPressed
	Condition ActionCondition // Optional: must return true to execute (nil = always)
}

// ActionRegistry maps global shortcuts to messages. The engine consults it
// for every KeyPressed before the widget tree sees the event; a matching
// action consumes the key press.
type ActionRegistry struct {
	actions []ActionEntry
}

// NewActionRegistry creates an empty registry.
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{actions: make([]ActionEntry, 0, 16)}
}

// Register adds an action. Earlier registrations win when hotkeys overlap.
func (r *ActionRegistry) Register(name string, hotkey Hotkey, msg Message) {
	r.RegisterWithCondition(name, hotkey, msg, nil)
}

// RegisterWithCondition adds an action with a condition that must be true to execute.
func (r *ActionRegistry) RegisterWithCondition(name string, hotkey Hotkey, msg Message, condition ActionCondition) {
	r.actions = append(r.actions, ActionEntry{
		Name:      name,
		Hotkey:    hotkey,
		Message:   msg,
		Condition: condition,
	})
}

// Handle emits the first action matching ev and reports whether one did.
func (r *ActionRegistry) Handle(ctx *EventContext, ev KeyPressed) bool {
	for i := range r.actions {
		a := &r.actions[i]
		if a.Hotkey.Key != ev.Key || !ev.Modifiers.Matches(a.Hotkey.Modifiers) {
			continue
		}
		if a.Condition != nil && !a.Condition() {
			continue
		}
		ctx.Emit(a.Message, ev)
		return true
	}
	return false
}

// Unregister removes an action by name.
func (r *ActionRegistry) Unregister(name string) {
	for i, a := range r.actions {
		if a.Name == name {
			r.actions = append(r.actions[:i], r.actions[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered actions.
func (r *ActionRegistry) Len() int { return len(r.actions) }

// Clear removes all registered actions.
func (r *ActionRegistry) Clear() {
	r.actions = r.actions[:0]
}
