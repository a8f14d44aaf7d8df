package editor

// Movable is the reordering surface a drag session drives; both QuestionList
// and BlockList satisfy it.
type Movable interface {
	Move(from, to int)
}

// DragSession tracks one drag gesture. Every hover over a new target index
// commits a move immediately rather than batching to a single drop, so the
// list order always matches what the user sees mid-drag.
type DragSession struct {
	list    Movable
	current int
	active  bool
}

func NewDragSession(list Movable) *DragSession {
	return &DragSession{list: list, current: -1}
}

func (s *DragSession) Start(index int) {
	s.current = index
	s.active = true
}

// HoverOver applies the eager reorder step: the dragged item moves to the
// hovered index and the drag continues from there.
func (s *DragSession) HoverOver(index int) {
	if !s.active || index == s.current {
		return
	}
	s.list.Move(s.current, index)
	s.current = index
}

func (s *DragSession) End() {
	s.current = -1
	s.active = false
}

func (s *DragSession) Active() bool {
	return s.active
}
