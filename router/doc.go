// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for Quickly Ask.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(env)

# Endpoints

Health:

	GET /health

Public:

	GET  /        - Posts and questions
	POST /ask     - Submit a question
	GET  /login   - Login form
	POST /login   - Log in

Administrator (session cookie required, otherwise 303 to /login):

	GET  /logout       - Log out
	GET  /dashboard    - All questions, newest first
	GET  /new_post     - Post form
	POST /new_post     - Publish a post
	GET  /answer/{id}  - Answer form
	POST /answer/{id}  - Save an answer

Setup (loopback callers or ?token=SETUP_TOKEN):

	GET /init-db     - Create tables and the admin user
	GET /reset-admin - Restore the default admin password
*/
package router
