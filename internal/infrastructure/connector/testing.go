//go:build integration
// +build integration

package connector

// TestConnectionString points at the Azurite emulator
const TestConnectionString = "DefaultEndpointsProtocol=http;AccountName=devstoreaccount1;AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;BlobEndpoint=http://127.0.0.1:10000/devstoreaccount1;"

// TestContainerName is the default test container name
const TestContainerName = "test-container"

// TestPublicBaseURL is the emulator URL of TestContainerName
const TestPublicBaseURL = "http://127.0.0.1:10000/devstoreaccount1/" + TestContainerName
