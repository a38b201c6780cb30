package cache

// BoltDB bucket names
const (
	BucketHashes = "hashes" // {source path} -> Entry
	BucketMeta   = "meta"   // schema_version

	KeySchemaVersion = "schema_version"
)

// SchemaVersion changes when the bolt layout does. A database written
// under another version is treated as empty.
const SchemaVersion uint32 = 1
