// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (credentials, payloads, typed errors) and contracts
// (interfaces) only.
package domain
