package sim

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// HookPos defines the enum of possible hooking positions.
type HookPos struct {
	Name string
}

// HookPosBufPush marks when a packet is pushed into a buffer.
var HookPosBufPush = &HookPos{Name: "Buffer Push"}

// HookPosBufPop marks when a packet is popped from a buffer.
var HookPosBufPop = &HookPos{Name: "Buffer Pop"}

// HookPosTickStart marks the beginning of a tick, before any node drains its
// inbox.
var HookPosTickStart = &HookPos{Name: "Tick Start"}

// HookPosTickEnd marks the end of a tick, after the outbox flush completes.
var HookPosTickEnd = &HookPos{Name: "Tick End"}

// HookCtx is the context that holds all the information about the site that a
// hook is triggered.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable defines an object that accepts Hooks.
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)
}

// Hook is a short piece of program that can be invoked by a hookable object.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides some utility function for other types that
// implement the Hookable interface.
type HookableBase struct {
	Hooks []Hook
}

// AcceptHook registers a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// NumHooks returns the number of hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.Hooks)
}

// InvokeHook triggers the registered Hooks.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
