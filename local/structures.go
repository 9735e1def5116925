package local

type HideRequest struct {
	Image	string	`json:"image"`		// base64-encoded image file
	Message	string	`json:"message"`	// text to hide
}

type HideResponse struct {
	Errors	[]string	`json:"errors"`
	Image	string		`json:"image"`	// base64-encoded encoded image
	Format	string		`json:"format"`
}

type ExtractRequest struct {
	Image	string	`json:"image"`		// base64-encoded image file
}

type ExtractResponse struct {
	Errors	[]string	`json:"errors"`
	Message	string		`json:"message"`
	Length	int		`json:"length"`	// recovered payload size in bytes
}

type CapacityRequest struct {
	Image	string	`json:"image"`		// base64-encoded image file
}

type CapacityResponse struct {
	Errors		[]string	`json:"errors"`
	Width		int		`json:"width"`
	Height		int		`json:"height"`
	Channels	int		`json:"channels"`
	MaxBytes	int		`json:"max_bytes"`
}
