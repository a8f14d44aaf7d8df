package editor

import (
	"github.com/google/uuid"

	"github.com/astrumlab/tzbrief/internal/model"
)

// BlockList builds the ordered block payload of a technical spec in memory.
type BlockList struct {
	items []model.Block
}

func NewBlockList(items []model.Block) *BlockList {
	return &BlockList{items: items}
}

func (l *BlockList) Items() []model.Block {
	return l.items
}

func (l *BlockList) Len() int {
	return len(l.items)
}

// Append adds a block of the given type with its empty default payload.
func (l *BlockList) Append(t model.BlockType) model.Block {
	b := model.Block{
		ID:      uuid.NewString(),
		Type:    t,
		Content: model.DefaultBlockContent(t),
	}
	l.items = append(l.items, b)
	return b
}

// UpdateContent replaces a block's payload wholesale. Payloads of the wrong
// variant are ignored, as are out-of-range indices.
func (l *BlockList) UpdateContent(index int, content model.BlockContent) {
	if !inRange(l.items, index) || content == nil {
		return
	}
	if content.Kind() != l.items[index].Type {
		return
	}
	l.items[index].Content = content
}

func (l *BlockList) Remove(index int) {
	l.items = removeAt(l.items, index)
}

func (l *BlockList) Move(from, to int) {
	l.items = moveItem(l.items, from, to)
}

// Task sub-list editing, scoped to one tasks block.

func (l *BlockList) AddTask(index int, text string) {
	l.withTasks(index, func(c *model.TasksContent) {
		c.Tasks = append(c.Tasks, model.Task{Text: text})
	})
}

func (l *BlockList) SetTaskText(index, taskIndex int, text string) {
	l.withTasks(index, func(c *model.TasksContent) {
		if inRange(c.Tasks, taskIndex) {
			c.Tasks[taskIndex].Text = text
		}
	})
}

func (l *BlockList) ToggleTask(index, taskIndex int) {
	l.withTasks(index, func(c *model.TasksContent) {
		if inRange(c.Tasks, taskIndex) {
			c.Tasks[taskIndex].Completed = !c.Tasks[taskIndex].Completed
		}
	})
}

func (l *BlockList) RemoveTask(index, taskIndex int) {
	l.withTasks(index, func(c *model.TasksContent) {
		c.Tasks = removeAt(c.Tasks, taskIndex)
	})
}

// Media file sub-list editing.

func (l *BlockList) AddFile(index int, file model.MediaFile) {
	l.withMedia(index, func(c *model.MediaContent) {
		c.Files = append(c.Files, file)
	})
}

func (l *BlockList) RemoveFile(index, fileIndex int) {
	l.withMedia(index, func(c *model.MediaContent) {
		c.Files = removeAt(c.Files, fileIndex)
	})
}

// Reference sub-list editing (images and links).

func (l *BlockList) AddImage(index int, url string) {
	l.withReferences(index, func(c *model.ReferencesContent) {
		c.Images = append(c.Images, url)
	})
}

func (l *BlockList) RemoveImage(index, imageIndex int) {
	l.withReferences(index, func(c *model.ReferencesContent) {
		c.Images = removeAt(c.Images, imageIndex)
	})
}

func (l *BlockList) AddLink(index int, link model.RefLink) {
	l.withReferences(index, func(c *model.ReferencesContent) {
		c.Links = append(c.Links, link)
	})
}

func (l *BlockList) UpdateLink(index, linkIndex int, link model.RefLink) {
	l.withReferences(index, func(c *model.ReferencesContent) {
		if inRange(c.Links, linkIndex) {
			c.Links[linkIndex] = link
		}
	})
}

func (l *BlockList) RemoveLink(index, linkIndex int) {
	l.withReferences(index, func(c *model.ReferencesContent) {
		c.Links = removeAt(c.Links, linkIndex)
	})
}

func (l *BlockList) withTasks(index int, apply func(*model.TasksContent)) {
	if !inRange(l.items, index) {
		return
	}
	content, ok := l.items[index].Content.(model.TasksContent)
	if !ok {
		return
	}
	apply(&content)
	l.items[index].Content = content
}

func (l *BlockList) withMedia(index int, apply func(*model.MediaContent)) {
	if !inRange(l.items, index) {
		return
	}
	content, ok := l.items[index].Content.(model.MediaContent)
	if !ok {
		return
	}
	apply(&content)
	l.items[index].Content = content
}

func (l *BlockList) withReferences(index int, apply func(*model.ReferencesContent)) {
	if !inRange(l.items, index) {
		return
	}
	content, ok := l.items[index].Content.(model.ReferencesContent)
	if !ok {
		return
	}
	apply(&content)
	l.items[index].Content = content
}
