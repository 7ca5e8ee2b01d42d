// Package users defines admin accounts, their roles and the session tokens
// that grant access to the admin API.
package users
