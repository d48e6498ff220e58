package utils

// ResponseData is the envelope every REST endpoint answers with. Status
// drives the HTTP status code only and is not serialized.
type ResponseData struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Results any    `json:"results,omitempty"`
}
