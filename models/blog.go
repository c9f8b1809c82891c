// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Identity is anything the session layer can bind a session to.
// Two identities are the same principal when their IDs are equal.
type Identity interface {
	IdentityID() int64
}

// Domain types

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) IdentityID() int64 {
	return u.ID
}

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type Question struct {
	ID         int64      `json:"id"`
	Body       string     `json:"body"`
	Answer     *string    `json:"answer,omitempty"` // nil until answered
	CreatedAt  time.Time  `json:"created_at"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
}

// Answered reports whether an administrator has supplied an answer
func (q Question) Answered() bool {
	return q.Answer != nil
}

// Session binds an opaque token to an authenticated user
type Session struct {
	Token     string
	UserID    int64
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Form types

type LoginForm struct {
	Username string
	Password string
}

type PostForm struct {
	Title string
	Body  string
}

type AnswerForm struct {
	Answer string
}
