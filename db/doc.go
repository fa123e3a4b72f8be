// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database connection and creates the schema.

# Connecting

Open selects the driver from the configured database type and pings the
server before returning:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

Supported types:

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go, used by the tests)

SQLite connections are limited to a single open connection.

# Schema Creation

CreateSchema initializes all required tables for the given type:

	if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - categories: id, type
  - questions: id, question, answer, category, difficulty

questions.category refers to categories.id by convention only; there is no
foreign key, so questions in unknown categories are stored as given.

# Indexes

  - questions.category
*/
package db
