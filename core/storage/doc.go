// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// screenshot archive: captured PNGs are uploaded alongside the protocol
// response so a session's visual history survives the session. This
// abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the archive bucket.
//   - MakeBucket: Creates the archive bucket if needed.
//   - PutObject: Uploads a captured screenshot.
//   - RemoveObject: Deletes an archived screenshot.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "screenshots")
package storage
