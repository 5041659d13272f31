// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package sqlitewiki provides an embedded SQLite wiki backend implementing
// the page and semantic store contracts. It gives the CLI a persistent wiki
// to compile against without a running wiki host: pages live in one table,
// and every write refreshes the scanned inline annotations that back the
// semantic read side.
package sqlitewiki

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/semanticschemas/semanticschemas/internal/wiki"
)

type pageRow struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Namespace int    `gorm:"uniqueIndex:idx_pages_ns_title;not null"`
	Title     string `gorm:"type:text;uniqueIndex:idx_pages_ns_title;not null"`
	Content   string `gorm:"type:text"`
	Revision  int    `gorm:"not null"`
	UpdatedAt time.Time
}

func (pageRow) TableName() string { return "pages" }

type annotationRow struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Namespace int    `gorm:"index:idx_annotations_subject;not null"`
	Title     string `gorm:"type:text;index:idx_annotations_subject;not null"`
	Property  string `gorm:"type:text;index;not null"`
	Value     string `gorm:"type:text"`
	Position  int    `gorm:"not null"`
}

func (annotationRow) TableName() string { return "annotations" }

// Backend is a SQLite-backed wiki store.
type Backend struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ wiki.Store = (*Backend)(nil)

// Open opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an ephemeral database.
func Open(path string, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&pageRow{}, &annotationRow{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate tables: %w", err)
	}
	logger.Debug("sqlite wiki opened", "path", path)
	return &Backend{db: db, logger: logger.With("component", "sqlitewiki")}, nil
}

// MakeTitle implements wiki.PageStore.
func (b *Backend) MakeTitle(name string, ns wiki.Namespace) (wiki.Title, error) {
	return wiki.NewTitle(ns, name)
}

// Exists implements wiki.PageStore.
func (b *Backend) Exists(ctx context.Context, title wiki.Title) (bool, error) {
	var count int64
	err := b.db.WithContext(ctx).Model(&pageRow{}).
		Where("namespace = ? AND title = ?", int(title.Namespace()), title.Text()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check page existence: %w", err)
	}
	return count > 0, nil
}

// Read implements wiki.PageStore.
func (b *Backend) Read(ctx context.Context, title wiki.Title) (string, error) {
	var row pageRow
	err := b.db.WithContext(ctx).
		Where("namespace = ? AND title = ?", int(title.Namespace()), title.Text()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", wiki.ErrPageNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read page %q: %w", title.String(), err)
	}
	return row.Content, nil
}

// CreateOrUpdate implements wiki.PageStore. The page row and its scanned
// annotations are replaced in one transaction.
func (b *Backend) CreateOrUpdate(ctx context.Context, title wiki.Title, content, summary string) error {
	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row pageRow
		err := tx.Where("namespace = ? AND title = ?", int(title.Namespace()), title.Text()).First(&row).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = pageRow{
				Namespace: int(title.Namespace()),
				Title:     title.Text(),
				Content:   content,
				Revision:  1,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			row.Content = content
			row.Revision++
			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		}
		return b.refreshAnnotations(tx, title, content)
	})
	if err != nil {
		return fmt.Errorf("failed to write page %q: %w", title.String(), err)
	}
	b.logger.Debug("page written", "title", title.String(), "summary", summary)
	return nil
}

func (b *Backend) refreshAnnotations(tx *gorm.DB, title wiki.Title, content string) error {
	if err := tx.Where("namespace = ? AND title = ?", int(title.Namespace()), title.Text()).
		Delete(&annotationRow{}).Error; err != nil {
		return err
	}
	annotations := wiki.ScanAnnotations(content)
	if len(annotations) == 0 {
		return nil
	}
	rows := make([]annotationRow, 0, len(annotations))
	for i, a := range annotations {
		rows = append(rows, annotationRow{
			Namespace: int(title.Namespace()),
			Title:     title.Text(),
			Property:  wiki.NormalizeTitleText(a.Property),
			Value:     a.Value,
			Position:  i,
		})
	}
	return tx.Create(&rows).Error
}

// Delete implements wiki.PageStore.
func (b *Backend) Delete(ctx context.Context, title wiki.Title, reason string) error {
	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("namespace = ? AND title = ?", int(title.Namespace()), title.Text()).
			Delete(&pageRow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return wiki.ErrPageNotFound
		}
		return tx.Where("namespace = ? AND title = ?", int(title.Namespace()), title.Text()).
			Delete(&annotationRow{}).Error
	})
	if errors.Is(err, wiki.ErrPageNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to delete page %q: %w", title.String(), err)
	}
	b.logger.Debug("page deleted", "title", title.String(), "reason", reason)
	return nil
}

// Purge implements wiki.PageStore. There is no render cache to invalidate.
func (b *Backend) Purge(ctx context.Context, _ wiki.Title) error {
	return ctx.Err()
}

// ListSubjectsInNamespace implements wiki.SemanticStore.
func (b *Backend) ListSubjectsInNamespace(ctx context.Context, ns wiki.Namespace) ([]wiki.Title, error) {
	var rows []pageRow
	err := b.db.WithContext(ctx).
		Where("namespace = ?", int(ns)).
		Order("title ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list namespace %d: %w", int(ns), err)
	}
	titles := make([]wiki.Title, 0, len(rows))
	for _, row := range rows {
		title, err := wiki.NewTitle(ns, row.Title)
		if err != nil {
			return nil, fmt.Errorf("stored title %q is invalid: %w", row.Title, err)
		}
		titles = append(titles, title)
	}
	return titles, nil
}

// ReadProperty implements wiki.SemanticStore.
func (b *Backend) ReadProperty(ctx context.Context, subject wiki.Title, property string) ([]string, error) {
	var rows []annotationRow
	err := b.db.WithContext(ctx).
		Where("namespace = ? AND title = ? AND property = ?",
			int(subject.Namespace()), subject.Text(), wiki.NormalizeTitleText(property)).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read property %q on %q: %w", property, subject.String(), err)
	}
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.Value)
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}

// FlushPending implements wiki.SemanticStore. Annotation rows are refreshed
// inside the write transaction, so there is never pending work.
func (b *Backend) FlushPending(ctx context.Context) error {
	return ctx.Err()
}
