// Package security signs admin session tokens and hashes their passwords.
package security
