package pocket

// BaseRecord carries the metadata the store attaches to every record.
// Embed it in a collection schema to receive id and timestamps without
// spelling them out per entity. Created and updated are assigned by the
// store, never by the client.
type BaseRecord struct {
	ID             string `json:"id,omitempty"`
	CollectionID   string `json:"collectionId,omitempty"`
	CollectionName string `json:"collectionName,omitempty"`
	Created        string `json:"created,omitempty"`
	Updated        string `json:"updated,omitempty"`
}

func (r BaseRecord) RecordID() string {
	return r.ID
}

// OwnedRecord is a BaseRecord plus the owning-user relation and the
// optional farm-scoping relation every mutable collection carries.
type OwnedRecord struct {
	BaseRecord
	User string `json:"user,omitempty"`
	Farm string `json:"farm,omitempty"`
}

func (r OwnedRecord) OwnerID() string {
	return r.User
}

func (r OwnedRecord) FarmID() string {
	return r.Farm
}

// Owned is satisfied by any wire schema embedding OwnedRecord.
type Owned interface {
	RecordID() string
	OwnerID() string
	FarmID() string
}
