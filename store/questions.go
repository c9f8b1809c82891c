// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"

	"github.com/danielhkuo/quickly-ask/models"
)

const questionColumns = `id, body, answer, created_at, answered_at`

func scanQuestion(row interface{ Scan(...any) error }) (*models.Question, error) {
	var q models.Question
	if err := row.Scan(&q.ID, &q.Body, &q.Answer, &q.CreatedAt, &q.AnsweredAt); err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateQuestion stores an unanswered question
func (s *Store) CreateQuestion(ctx context.Context, body string) (*models.Question, error) {
	q := models.Question{
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	err := s.queryRow(ctx, `
		INSERT INTO questions (body, created_at)
		VALUES (?, ?)
		RETURNING id
	`, q.Body, q.CreatedAt).Scan(&q.ID)
	if err != nil {
		return nil, wrapErr("create question", err)
	}

	return &q, nil
}

func (s *Store) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	q, err := scanQuestion(s.queryRow(ctx, `
		SELECT `+questionColumns+` FROM questions WHERE id = ?
	`, id))
	if err != nil {
		return nil, wrapErr("get question", err)
	}
	return q, nil
}

// ListQuestions returns every question in store order (oldest first)
func (s *Store) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.listQuestions(ctx, "list questions", `ORDER BY id`)
}

// ListQuestionsNewestFirst returns every question, most recently created first
func (s *Store) ListQuestionsNewestFirst(ctx context.Context) ([]models.Question, error) {
	return s.listQuestions(ctx, "list questions newest first", `ORDER BY id DESC`)
}

func (s *Store) listQuestions(ctx context.Context, op, orderBy string) ([]models.Question, error) {
	rows, err := s.query(ctx, `SELECT `+questionColumns+` FROM questions `+orderBy)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, wrapErr("scan question", err)
		}
		questions = append(questions, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}

	return questions, nil
}

// AnswerQuestion sets (or overwrites) the answer of a question
func (s *Store) AnswerQuestion(ctx context.Context, id int64, answer string) (*models.Question, error) {
	res, err := s.exec(ctx, `
		UPDATE questions
		SET answer = ?, answered_at = ?
		WHERE id = ?
	`, answer, time.Now().UTC(), id)
	if err != nil {
		return nil, wrapErr("answer question", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, wrapErr("answer question", err)
	}
	if n == 0 {
		return nil, wrapErr("answer question", ErrNotFound)
	}

	return s.GetQuestion(ctx, id)
}
