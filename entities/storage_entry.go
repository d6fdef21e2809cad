package entities

// StorageEntry is a namespaced key holding one serialized collection blob.
type StorageEntry struct {
	Key   string `gorm:"primary_key;column:key" json:"key"`
	Value string `gorm:"type:text" json:"value"`

	Timestamp
}
