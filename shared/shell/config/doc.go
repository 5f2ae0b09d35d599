// Package config holds the runtime configuration of EventHub and the connection helpers for the
// storage drivers.
//
// Configuration is read from EVENTHUB_* environment variables with github.com/caarlos0/env. The
// postgres helpers create pgxpool, database/sql (lib/pq) and sqlx connections with pre-configured
// pool settings. All helpers return errors instead of terminating the process.
package config
