package httptransport

// Wire response shapes. Documents serialize through the model types
// directly; these wrappers cover the remaining endpoints.

type HashResponse struct {
	Hash string `json:"hash"`
}

type UserDocumentsResponse struct {
	Documents []string `json:"documents"`
}

type ConfigResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
