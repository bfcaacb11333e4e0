package types

type TranslateRequest struct {
	Text       string `json:"text" binding:"required"`
	TargetLang string `json:"target_lang" binding:"required"`
	SourceLang string `json:"source_lang"`
}

// DocumentHandle is the opaque (id, key) pair the provider issues for a
// document translation job. The relay passes both values through unmodified.
type DocumentHandle struct {
	DocumentID  string `json:"document_id"`
	DocumentKey string `json:"document_key"`
}

type DocumentStatusRequest struct {
	DocumentID  string `json:"document_id" binding:"required"`
	DocumentKey string `json:"document_key" binding:"required"`
}

type DocumentDownloadRequest struct {
	DocumentID     string `json:"document_id" binding:"required"`
	DocumentKey    string `json:"document_key" binding:"required"`
	OutputFileName string `json:"outputFileName" binding:"required"`
}
