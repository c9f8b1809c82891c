// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for Quickly Ask.

# Handler Types

Each handler is a struct holding the shared *Env:

  - SiteHandler: Public index of posts and questions
  - AuthHandler: Login form, login and logout
  - PostHandler: New post form and creation
  - QuestionHandler: Asking, the dashboard and answering
  - SetupHandler: Database initialization and admin reset

Env is built once and passed to every constructor:

	env, err := handlers.NewEnv(conn, db.DialectSQLite, cfg)
	questionHandler := handlers.NewQuestionHandler(env)

# Responses

Pages are rendered through views; successful form submissions answer with
303 See Other. Validation failures re-render the form with status 400.
Unknown or malformed question IDs are 404. Store failures are logged and
answered with a plain 500.

Administrator handlers assume middleware.RequireAuth has already run.
*/
package handlers
