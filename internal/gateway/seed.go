package gateway

import (
	"time"

	"github.com/astrumlab/tzbrief/internal/model"
	"github.com/astrumlab/tzbrief/internal/pkg/timeutil"
)

// SeedOwnerID is the placeholder identity every seed document belongs to.
const SeedOwnerID int64 = 123456789

// Seed constructs the demo dataset served when no backing store is configured
// or a configured store fails on a read. Callers receive a fresh slice on
// every invocation; the Gateway never mutates it in place.
func Seed() []model.Document {
	now := timeutil.Now()
	day := 24 * time.Hour
	return []model.Document{
		{
			ID:      "550e8400-e29b-41d4-a716-446655440001",
			OwnerID: SeedOwnerID,
			Title:   "Лендинг для стартапа",
			Type:    model.TypeTZ,
			Status:  model.StatusActive,
			Design:  model.DesignConfig{BgColor: "#E5F3FF", Font: model.FontRegular},
			Content: model.Content{Blocks: []model.Block{
				{
					ID:      "block1",
					Type:    model.BlockDescription,
					Content: model.DescriptionContent{Text: "Создать современный лендинг для IT-стартапа"},
				},
			}},
			SharedWith: []string{},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:      "550e8400-e29b-41d4-a716-446655440002",
			OwnerID: SeedOwnerID,
			Title:   "Бриф для дизайна логотипа",
			Type:    model.TypeBrief,
			Status:  model.StatusDraft,
			Design:  model.DesignConfig{BgColor: "#E5FFE5", Font: model.FontRegular},
			Content: model.Content{Questions: []model.Question{
				{
					ID:       "q1",
					Title:    "Какой стиль логотипа вы предпочитаете?",
					Type:     model.QuestionMultiChoice,
					Options:  []string{"Минималистичный", "Классический", "Современный"},
					Required: true,
				},
			}},
			SharedWith: []string{},
			CreatedAt:  now.Add(-1 * day),
			UpdatedAt:  now.Add(-1 * day),
		},
		{
			ID:      "550e8400-e29b-41d4-a716-446655440003",
			OwnerID: SeedOwnerID,
			Title:   "ТЗ на мобильное приложение",
			Type:    model.TypeTZ,
			Status:  model.StatusCompleted,
			Design:  model.DesignConfig{BgColor: "#FFE5E5", Font: model.FontBold},
			Content: model.Content{Blocks: []model.Block{
				{
					ID:      "block1",
					Type:    model.BlockDescription,
					Content: model.DescriptionContent{Text: "Разработка мобильного приложения для доставки еды"},
				},
				{
					ID:   "block2",
					Type: model.BlockTasks,
					Content: model.TasksContent{Tasks: []model.Task{
						{Text: "Создать дизайн интерфейса", Completed: true},
						{Text: "Разработать API", Completed: true},
						{Text: "Тестирование", Completed: false},
					}},
				},
			}},
			SharedWith: []string{},
			CreatedAt:  now.Add(-2 * day),
			UpdatedAt:  now.Add(-2 * day),
		},
		{
			ID:         "550e8400-e29b-41d4-a716-446655440004",
			OwnerID:    SeedOwnerID,
			Title:      "Шаблон брифа для веб-дизайна",
			Type:       model.TypeBrief,
			Status:     model.StatusDraft,
			Design:     model.DesignConfig{BgColor: "#F0E5FF", Font: model.FontRegular},
			IsTemplate: true,
			Content: model.Content{Questions: []model.Question{
				{
					ID:       "q1",
					Title:    "Какой тип сайта вы хотите создать?",
					Type:     model.QuestionMultiChoice,
					Options:  []string{"Лендинг", "Корпоративный сайт", "Интернет-магазин", "Блог"},
					Required: true,
				},
				{
					ID:       "q2",
					Title:    "Опишите вашу целевую аудиторию",
					Type:     model.QuestionText,
					Required: true,
				},
			}},
			SharedWith: []string{},
			CreatedAt:  now.Add(-3 * day),
			UpdatedAt:  now.Add(-3 * day),
		},
		{
			ID:         "550e8400-e29b-41d4-a716-446655440005",
			OwnerID:    SeedOwnerID,
			Title:      "Шаблон ТЗ для мобильного приложения",
			Type:       model.TypeTZ,
			Status:     model.StatusDraft,
			Design:     model.DesignConfig{BgColor: "#FFE5F5", Font: model.FontRegular},
			IsTemplate: true,
			Content: model.Content{Blocks: []model.Block{
				{
					ID:      "block1",
					Type:    model.BlockDescription,
					Content: model.DescriptionContent{Text: "Шаблон для создания ТЗ на мобильное приложение"},
				},
				{
					ID:   "block2",
					Type: model.BlockTasks,
					Content: model.TasksContent{Tasks: []model.Task{
						{Text: "Определить функциональные требования", Completed: false},
						{Text: "Создать wireframes", Completed: false},
						{Text: "Описать пользовательские сценарии", Completed: false},
					}},
				},
			}},
			SharedWith: []string{},
			CreatedAt:  now.Add(-4 * day),
			UpdatedAt:  now.Add(-4 * day),
		},
		{
			ID:      "550e8400-e29b-41d4-a716-446655440006",
			OwnerID: SeedOwnerID,
			Title:   "Бриф для редизайна сайта",
			Type:    model.TypeBrief,
			Status:  model.StatusActive,
			Design:  model.DesignConfig{BgColor: "#E5FFFF", Font: model.FontRegular},
			Content: model.Content{Questions: []model.Question{
				{
					ID:       "q1",
					Title:    "Что не устраивает в текущем дизайне?",
					Type:     model.QuestionText,
					Required: true,
				},
			}},
			SharedWith: []string{},
			CreatedAt:  now.Add(-5 * day),
			UpdatedAt:  now.Add(-5 * day),
		},
	}
}
