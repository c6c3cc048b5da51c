package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
	StorageGCS   = "gcs"
)

const MimePNG = "image/png"

// pagination for session listings
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)
