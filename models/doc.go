// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and form types.

# Domain Types

  - User: administrator account (the password hash never leaves the server)
  - Post: immutable blog post
  - Question: visitor question with an optional answer
  - Session: server-side login state

# Form Types

  - LoginForm: username, password
  - PostForm: title, body
  - AnswerForm: answer

Identity is implemented by anything a session can be bound to.
*/
package models
