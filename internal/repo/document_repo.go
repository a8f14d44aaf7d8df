package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/didi/gendry/builder"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/astrumlab/tzbrief/internal/model"
	"github.com/astrumlab/tzbrief/internal/pkg/dbutil"
	appErr "github.com/astrumlab/tzbrief/internal/pkg/errors"
)

var documentColumns = []string{
	"id", "user_id", "title", "type", "status", "design_config", "content",
	"preview_image", "is_template", "shared_with", "created_at", "updated_at",
}

type DocumentRepo struct {
	db *sqlx.DB
}

func NewDocumentRepo(db *sqlx.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

type documentRow struct {
	ID           string         `db:"id"`
	UserID       int64          `db:"user_id"`
	Title        string         `db:"title"`
	Type         string         `db:"type"`
	Status       string         `db:"status"`
	Design       types.JSONText `db:"design_config"`
	Content      types.JSONText `db:"content"`
	PreviewImage sql.NullString `db:"preview_image"`
	IsTemplate   bool           `db:"is_template"`
	SharedWith   types.JSONText `db:"shared_with"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r documentRow) toModel() (model.Document, error) {
	doc := model.Document{
		ID:         r.ID,
		OwnerID:    r.UserID,
		Title:      r.Title,
		Type:       model.DocumentType(r.Type),
		Status:     model.DocumentStatus(r.Status),
		IsTemplate: r.IsTemplate,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.PreviewImage.Valid {
		preview := r.PreviewImage.String
		doc.PreviewImage = &preview
	}
	if err := json.Unmarshal(r.Design, &doc.Design); err != nil {
		return doc, err
	}
	if err := json.Unmarshal(r.Content, &doc.Content); err != nil {
		return doc, err
	}
	doc.SharedWith = []string{}
	if len(r.SharedWith) > 0 {
		if err := json.Unmarshal(r.SharedWith, &doc.SharedWith); err != nil {
			return doc, err
		}
	}
	return doc, nil
}

func toRowData(doc *model.Document) (map[string]interface{}, error) {
	design, err := json.Marshal(doc.Design)
	if err != nil {
		return nil, err
	}
	content, err := json.Marshal(doc.Content)
	if err != nil {
		return nil, err
	}
	sharedWith := doc.SharedWith
	if sharedWith == nil {
		sharedWith = []string{}
	}
	shared, err := json.Marshal(sharedWith)
	if err != nil {
		return nil, err
	}
	var preview interface{}
	if doc.PreviewImage != nil {
		preview = *doc.PreviewImage
	}
	return map[string]interface{}{
		"id":            doc.ID,
		"user_id":       doc.OwnerID,
		"title":         doc.Title,
		"type":          string(doc.Type),
		"status":        string(doc.Status),
		"design_config": types.JSONText(design),
		"content":       types.JSONText(content),
		"preview_image": preview,
		"is_template":   doc.IsTemplate,
		"shared_with":   types.JSONText(shared),
		"created_at":    doc.CreatedAt,
		"updated_at":    doc.UpdatedAt,
	}, nil
}

func (r *DocumentRepo) Create(ctx context.Context, doc *model.Document) error {
	data, err := toRowData(doc)
	if err != nil {
		return err
	}
	sqlStr, args, err := builder.BuildInsert("documents", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// List returns the owner's document summaries, most recently modified first.
// The template filter suppresses the status filter: templates are listed
// regardless of status.
func (r *DocumentRepo) List(ctx context.Context, userID int64, filter model.ListFilter) ([]model.Document, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"_orderby": "updated_at desc",
	}
	if filter.StatusApplies() {
		where["status"] = string(*filter.Status)
	}
	if filter.Type != nil {
		where["type"] = string(*filter.Type)
	}
	if filter.Template != nil {
		where["is_template"] = *filter.Template
	}
	sqlStr, args, err := builder.BuildSelect("documents", where, documentColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	var rows []documentRow
	if err := r.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return nil, err
	}
	docs := make([]model.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := row.toModel()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// GetByID is deliberately unscoped by owner: documents are opened by shared
// link, so any existing id resolves.
func (r *DocumentRepo) GetByID(ctx context.Context, docID string) (*model.Document, error) {
	where := map[string]interface{}{"id": docID}
	sqlStr, args, err := builder.BuildSelect("documents", where, documentColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	var row documentRow
	if err := r.db.GetContext(ctx, &row, sqlStr, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	doc, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Update replaces title/design/content/status wholesale and refreshes
// updated_at. The WHERE clause includes the owner, so a mismatch reads the
// same as a missing row.
func (r *DocumentRepo) Update(ctx context.Context, doc *model.Document) error {
	design, err := json.Marshal(doc.Design)
	if err != nil {
		return err
	}
	content, err := json.Marshal(doc.Content)
	if err != nil {
		return err
	}
	where := map[string]interface{}{
		"id":      doc.ID,
		"user_id": doc.OwnerID,
	}
	update := map[string]interface{}{
		"title":         doc.Title,
		"design_config": types.JSONText(design),
		"content":       types.JSONText(content),
		"status":        string(doc.Status),
		"updated_at":    doc.UpdatedAt,
	}
	sqlStr, args, err := builder.BuildUpdate("documents", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *DocumentRepo) Delete(ctx context.Context, userID int64, docID string) error {
	where := map[string]interface{}{
		"id":      docID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildDelete("documents", where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}
