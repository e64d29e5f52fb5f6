package api

// swagger:model api.UploadResponse
type UploadResponse struct {
	ImageURL string `json:"imageUrl" example:"/uploads/image-1717171717-abcd1234.jpg"`
}
