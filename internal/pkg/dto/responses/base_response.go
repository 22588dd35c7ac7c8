package responses

type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	NextURL  string `json:"next_url,omitempty"`
	PrevURL  string `json:"prev_url,omitempty"`
}

type ErrorLocation struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

type ErrorResponseDTO struct {
	StatusCode int            `json:"status_code"`
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	Details    interface{}    `json:"details,omitempty"`
	DevMessage string         `json:"dev_message,omitempty"`
	Location   *ErrorLocation `json:"location,omitempty"`
}
