package editor

import (
	"github.com/google/uuid"

	"github.com/astrumlab/tzbrief/internal/model"
)

// QuestionList builds the ordered question payload of a brief in memory.
type QuestionList struct {
	items []model.Question
}

func NewQuestionList(items []model.Question) *QuestionList {
	return &QuestionList{items: items}
}

func (l *QuestionList) Items() []model.Question {
	return l.items
}

func (l *QuestionList) Len() int {
	return len(l.items)
}

// Append adds a fresh text question at the tail and returns it.
func (l *QuestionList) Append() model.Question {
	q := model.Question{
		ID:       uuid.NewString(),
		Type:     model.QuestionText,
		Required: false,
	}
	l.items = append(l.items, q)
	return q
}

// QuestionPatch carries the fields an Update merges into a question. Nil
// fields are left untouched.
type QuestionPatch struct {
	Title    *string
	Subtitle *string
	Type     *model.QuestionType
	Options  *[]string
	Required *bool
}

func (l *QuestionList) Update(index int, patch QuestionPatch) {
	if !inRange(l.items, index) {
		return
	}
	q := &l.items[index]
	if patch.Title != nil {
		q.Title = *patch.Title
	}
	if patch.Subtitle != nil {
		q.Subtitle = *patch.Subtitle
	}
	if patch.Type != nil {
		q.Type = *patch.Type
	}
	if patch.Options != nil {
		q.Options = *patch.Options
	}
	if patch.Required != nil {
		q.Required = *patch.Required
	}
}

func (l *QuestionList) Remove(index int) {
	l.items = removeAt(l.items, index)
}

func (l *QuestionList) Move(from, to int) {
	l.items = moveItem(l.items, from, to)
}

// Option sub-list editing, scoped to one multichoice question.

func (l *QuestionList) AddOption(index int, option string) {
	if !inRange(l.items, index) {
		return
	}
	l.items[index].Options = append(l.items[index].Options, option)
}

func (l *QuestionList) UpdateOption(index, optionIndex int, value string) {
	if !inRange(l.items, index) || !inRange(l.items[index].Options, optionIndex) {
		return
	}
	l.items[index].Options[optionIndex] = value
}

func (l *QuestionList) RemoveOption(index, optionIndex int) {
	if !inRange(l.items, index) {
		return
	}
	l.items[index].Options = removeAt(l.items[index].Options, optionIndex)
}
