// Package connector implements images.ImageConnector on the local filesystem
// and on Azure Blob Storage.
package connector
