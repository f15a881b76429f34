package models

// AssetRef identifies an externally hosted file: the public URL clients load
// and the storage key needed to delete the object later. The pair is either
// both empty (no asset) or both set; losing the key without deleting the
// object orphans it in storage.
type AssetRef struct {
	URL string `json:"url"`
	Key string `json:"-"`
}

// Present reports whether the reference points at a stored object.
func (r AssetRef) Present() bool {
	return r.URL != "" && r.Key != ""
}
