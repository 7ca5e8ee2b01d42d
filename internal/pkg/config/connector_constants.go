package config

// LocalImageProvider stores images on the local filesystem
const LocalImageProvider = "local"

// AzureImageProvider stores images in an Azure Blob Storage container
const AzureImageProvider = "azure"
