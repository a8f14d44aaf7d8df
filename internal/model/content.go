package model

import (
	"encoding/json"
	"fmt"

	appErr "github.com/astrumlab/tzbrief/internal/pkg/errors"
)

// Content is the document payload: an ordered question list for briefs or an
// ordered block list for technical specifications. Exactly one side is set,
// determined by the document type.
type Content struct {
	Questions []Question
	Blocks    []Block
}

// NewContent returns the empty payload shape for a document type:
// {"questions": []} for briefs, {"blocks": []} for technical specs.
func NewContent(t DocumentType) Content {
	if t == TypeBrief {
		return Content{Questions: []Question{}}
	}
	return Content{Blocks: []Block{}}
}

func (c Content) MarshalJSON() ([]byte, error) {
	payload := map[string]interface{}{}
	if c.Questions != nil {
		payload["questions"] = c.Questions
	}
	if c.Blocks != nil {
		payload["blocks"] = c.Blocks
	}
	return json.Marshal(payload)
}

func (c *Content) UnmarshalJSON(data []byte) error {
	var raw struct {
		Questions []Question `json:"questions"`
		Blocks    []Block    `json:"blocks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Questions = raw.Questions
	c.Blocks = raw.Blocks
	return nil
}

type QuestionType string

const (
	QuestionText        QuestionType = "text"
	QuestionMultiChoice QuestionType = "multichoice"
	QuestionImage       QuestionType = "image"
	QuestionVideo       QuestionType = "video"
)

// Question is one typed content unit of a brief. Options is only meaningful
// when Type is multichoice; order of questions and options is significant.
type Question struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle,omitempty"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required"`
}

type BlockType string

const (
	BlockMedia       BlockType = "media"
	BlockDescription BlockType = "description"
	BlockTasks       BlockType = "tasks"
	BlockReferences  BlockType = "references"
)

// BlockContent is the per-variant payload of a technical-spec block. Variants
// are a closed set dispatched on the block type tag.
type BlockContent interface {
	Kind() BlockType
}

type MediaFile struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

type MediaContent struct {
	Files []MediaFile `json:"files"`
}

func (MediaContent) Kind() BlockType { return BlockMedia }

type DescriptionContent struct {
	Text string `json:"text"`
}

func (DescriptionContent) Kind() BlockType { return BlockDescription }

type Task struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type TasksContent struct {
	Tasks []Task `json:"tasks"`
}

func (TasksContent) Kind() BlockType { return BlockTasks }

type RefLink struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

type ReferencesContent struct {
	Images []string  `json:"images"`
	Links  []RefLink `json:"links"`
}

func (ReferencesContent) Kind() BlockType { return BlockReferences }

// Block is one typed content unit of a technical specification.
type Block struct {
	ID      string
	Type    BlockType
	Content BlockContent
}

func (b Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID      string       `json:"id"`
		Type    BlockType    `json:"type"`
		Content BlockContent `json:"content"`
	}{ID: b.ID, Type: b.Type, Content: b.Content})
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      string          `json:"id"`
		Type    BlockType       `json:"type"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	content, err := decodeBlockContent(raw.Type, raw.Content)
	if err != nil {
		return err
	}
	b.ID = raw.ID
	b.Type = raw.Type
	b.Content = content
	return nil
}

func decodeBlockContent(t BlockType, data json.RawMessage) (BlockContent, error) {
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	switch t {
	case BlockMedia:
		var c MediaContent
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case BlockDescription:
		var c DescriptionContent
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case BlockTasks:
		var c TasksContent
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case BlockReferences:
		var c ReferencesContent
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: unknown block type %q", appErr.ErrInvalid, t)
	}
}

// DefaultBlockContent is the empty payload a freshly appended block starts
// with.
func DefaultBlockContent(t BlockType) BlockContent {
	switch t {
	case BlockMedia:
		return MediaContent{Files: []MediaFile{}}
	case BlockDescription:
		return DescriptionContent{}
	case BlockTasks:
		return TasksContent{Tasks: []Task{}}
	case BlockReferences:
		return ReferencesContent{Images: []string{}, Links: []RefLink{}}
	default:
		return nil
	}
}
