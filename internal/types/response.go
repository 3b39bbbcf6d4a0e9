package types

// Response is the envelope returned by every endpoint. AccessToken is only
// set by login; Data and Message are mutually exclusive in practice.
type Response struct {
	Success     bool        `json:"success"`
	AccessToken string      `json:"accessToken,omitempty"`
	Data        interface{} `json:"data,omitempty"`
	Message     string      `json:"message,omitempty"`
}
