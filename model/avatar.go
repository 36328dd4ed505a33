package model

// UploadAvatarResponse is returned by the anonymous avatar upload.
type UploadAvatarResponse struct {
	AvatarPath string `json:"avatarPath"`
}

// UpdateAvatarResponse is returned by the authenticated avatar update.
type UpdateAvatarResponse struct {
	AvatarURL string `json:"avatarURL"`
}
