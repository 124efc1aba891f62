package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const blobsTable = "blobs"

// Columns of the blobs table.
const (
	columnKey       = "key"
	columnValue     = "value"
	columnUpdatedAt = "updated_at"
)

var (
	blobsColumns = []*schema.Column{
		{Name: columnKey, Type: field.TypeString, Unique: true},
		{Name: columnValue, Type: field.TypeString, Size: 2147483647},
		// Unix milliseconds.
		{Name: columnUpdatedAt, Type: field.TypeInt64},
	}
	// BlobsTable holds the schema information for the "blobs" table.
	BlobsTable = &schema.Table{
		Name:       blobsTable,
		Columns:    blobsColumns,
		PrimaryKey: []*schema.Column{blobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blob_updated_at",
				Unique:  false,
				Columns: []*schema.Column{blobsColumns[2]},
			},
		},
	}
	// Tables holds every table the store migrates.
	Tables = []*schema.Table{
		BlobsTable,
	}
)
