package models

// InitRequest is the payload of POST /api/init.
type InitRequest struct {
	DataPath string `json:"dataPath"`
}

// StorageStatus describes the state of the server storage.
type StorageStatus struct {
	Initialized bool   `json:"initialized"`
	DataPath    string `json:"dataPath,omitempty"`
	Version     string `json:"version,omitempty"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// InitResponse is the body of a successful POST /api/init.
type InitResponse struct {
	Message  string `json:"message"`
	DataPath string `json:"dataPath"`
}
