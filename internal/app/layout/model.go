package layout

// UpdateThreadLayoutsRequest carries a batch of per-message layout blobs keyed
// by message id. Blobs are opaque to the store; the frontend serializes
// whatever its layout engine produces.
type UpdateThreadLayoutsRequest struct {
	Layouts map[uint64]string `json:"layouts" binding:"required"`
}

// UpdateMessageLayoutRequest sets or clears one message's layout. A null
// layout_data marks the message as needing recomputation.
type UpdateMessageLayoutRequest struct {
	LayoutData *string `json:"layout_data"`
}
