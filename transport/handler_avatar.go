package transport

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/muhammadheryan/contacts-api/constant"
	"github.com/muhammadheryan/contacts-api/model"
	utilsContext "github.com/muhammadheryan/contacts-api/utils/context"
	"github.com/muhammadheryan/contacts-api/utils/errors"
)

// readAvatarFile parses the multipart form and reads the avatar field,
// bounding the body size so a single upload cannot exhaust the process.
func (s *RestHandler) readAvatarFile(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	maxSize := s.Config.Avatar.MaxUploadSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			return nil, "", errors.SetCustomError(constant.ErrPayloadTooLarge)
		}
		return nil, "", errors.SetCustomError(constant.ErrNoFile)
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		return nil, "", errors.SetCustomError(constant.ErrNoFile)
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		return nil, "", errors.SetCustomError(constant.ErrInternal)
	}

	return buf, header.Filename, nil
}

// UploadAvatar handler
// @Summary Upload avatar
// @Description Process an avatar image and store it under the public avatar directory
// @Tags Avatars
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} model.UploadAvatarResponse
// @Failure 400 {object} transport.errorResponse
// @Router /api/avatars [post]
func (s *RestHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	buf, _, err := s.readAvatarFile(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	path, err := s.AvatarApp.Upload(ctx, buf)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.UploadAvatarResponse{AvatarPath: path})
}

// UpdateUserAvatar handler
// @Summary Update own avatar
// @Description Process an avatar image and attach it to the authenticated account
// @Tags Avatars
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} model.UpdateAvatarResponse
// @Failure 400 {object} transport.errorResponse
// @Failure 401 {object} transport.errorResponse
// @Security BearerAuth
// @Router /api/users/avatars [patch]
func (s *RestHandler) UpdateUserAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Bad request"))
		return
	}

	buf, fileName, err := s.readAvatarFile(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	url, err := s.AvatarApp.UpdateUserAvatar(ctx, userID, buf, fileName)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.UpdateAvatarResponse{AvatarURL: url})
}
