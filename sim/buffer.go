package sim

// A Buffer is a FIFO queue of anything. Buffers back node inboxes and
// outboxes. They are deliberately unbounded: flooding algorithms can grow an
// inbox without limit, and that growth is surfaced through the occupancy
// statistics rather than prevented.
type Buffer interface {
	Named
	Hookable

	Push(e interface{})
	Pop() interface{}
	Peek() interface{}
	Size() int

	// Remove all elements in the buffer
	Clear()
}

// NewBuffer creates a default buffer object.
func NewBuffer(name string) Buffer {
	return &bufferImpl{name: name}
}

type bufferImpl struct {
	HookableBase

	name     string
	elements []interface{}
}

// Name returns the name of the buffer.
func (b *bufferImpl) Name() string {
	return b.name
}

func (b *bufferImpl) Push(e interface{}) {
	b.elements = append(b.elements, e)

	if b.NumHooks() > 0 {
		b.InvokeHook(HookCtx{
			Domain: b,
			Pos:    HookPosBufPush,
			Item:   e,
		})
	}
}

func (b *bufferImpl) Pop() interface{} {
	if len(b.elements) == 0 {
		return nil
	}

	e := b.elements[0]
	b.elements = b.elements[1:]

	if b.NumHooks() > 0 {
		b.InvokeHook(HookCtx{
			Domain: b,
			Pos:    HookPosBufPop,
			Item:   e,
		})
	}

	return e
}

func (b *bufferImpl) Peek() interface{} {
	if len(b.elements) == 0 {
		return nil
	}

	return b.elements[0]
}

func (b *bufferImpl) Size() int {
	return len(b.elements)
}

func (b *bufferImpl) Clear() {
	b.elements = nil
}
