// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

An optional dotenv file is loaded first so its values act as environment
variables:

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: Postgres URL or SQLite file path (required)
  - DatabaseType: "postgres" or "sqlite" (inferred from the URL)
  - APIKey: Bearer key guarding question create/delete (optional)
  - LogLevel: debug, info, warn or error (default: info)
  - LogFormat: text or json (default: text)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-api-key    API key
	-log-level  Log level
	-log-format Log format

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	API_KEY       → -api-key
	LOG_LEVEL     → -log-level
	LOG_FORMAT    → -log-format

CLI flags take precedence over environment variables, which take precedence
over the dotenv file.
*/
package cliparse
