package entity

// ImageUpload is an image received from a client, already read into memory.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the payload length in bytes.
func (u *ImageUpload) Size() int64 {
	if u == nil {
		return 0
	}

	return int64(len(u.Data))
}
