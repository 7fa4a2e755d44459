package dto

// UploadResult reports the outcome for a single file in an upload batch.
// Failed files carry Error; successful siblings are unaffected.
type UploadResult struct {
	FileName string `json:"file_name"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

type UploadBatchResponse struct {
	Uploaded []UploadResult `json:"uploaded"`
	Failed   []UploadResult `json:"failed"`
}
