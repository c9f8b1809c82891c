// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"

	"github.com/danielhkuo/quickly-ask/models"
)

func (s *Store) CreatePost(ctx context.Context, title, body string) (*models.Post, error) {
	p := models.Post{
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	err := s.queryRow(ctx, `
		INSERT INTO posts (title, body, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`, p.Title, p.Body, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return nil, wrapErr("create post", err)
	}

	return &p, nil
}

// ListPosts returns every post in store order (oldest first)
func (s *Store) ListPosts(ctx context.Context) ([]models.Post, error) {
	rows, err := s.query(ctx, `
		SELECT id, title, body, created_at
		FROM posts
		ORDER BY id
	`)
	if err != nil {
		return nil, wrapErr("list posts", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.CreatedAt); err != nil {
			return nil, wrapErr("scan post", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list posts", err)
	}

	return posts, nil
}
