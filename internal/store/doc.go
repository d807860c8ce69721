// Package store provides file-based persistence for the shapes client.
//
// SecretFileStore keeps the deployment secrets (API key, site keys) in a
// single passphrase-encrypted file under the configured home directory.
// Files are written atomically via a temp file and rename. All methods are
// concurrency-safe via internal locking.
package store
