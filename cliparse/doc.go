// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: database connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminKey: key expected in X-Admin-Key for the admin API (required)
  - IPHashSalt: secret for hashing voter IPs in logs (required)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-admin-key  Admin API key
	-ip-salt    Voter IP hash salt

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ADMIN_KEY     → -admin-key
	IP_HASH_SALT  → -ip-salt

CLI flags take precedence over environment variables.

# .env Files

LoadEnvFile reads a dotenv file before flags are parsed. Values already in
the environment win, and a missing file is ignored:

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
*/
package cliparse
