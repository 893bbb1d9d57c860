package server

// Tool describes an invocable operation and its input schema.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Resource describes an addressable record.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	MimeType    string `json:"mimeType"`
	Description string `json:"description"`
}

// CallRequest is the body of a tool invocation.
type CallRequest struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"arguments"`
}

// ContentBlock is a single text block in a tool invocation response.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallResponse wraps the content blocks returned by a tool invocation.
type CallResponse struct {
	Content []ContentBlock `json:"content"`
}
