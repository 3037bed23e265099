// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls server.

The site lists recently published questions, shows a voting form for each,
records votes and shows results. Questions and choices are created through a
small admin JSON API.

# Starting the Server

The server reads environment variables (optionally from .env) or CLI flags:

	DATABASE_URL=polls.db ADMIN_KEY=... IP_HASH_SALT=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin-key ... -ip-salt ...

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file or PostgreSQL connection string
  - ADMIN_KEY (-admin-key): key for the admin API
  - IP_HASH_SALT (-ip-salt): secret for hashing voter IPs in logs

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres

# Architecture

  - visibility: which questions are recent, listed, or reachable at a given instant
  - handlers: HTML pages, voting and the admin API
  - router: Route definitions using Go 1.22+ routing
  - middleware: request logging, admin key check, CORS, JSON helpers
  - db: connection, schema creation and the question/choice store
  - models: domain, request and response types
  - auth: admin key comparison and IP hashing
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
