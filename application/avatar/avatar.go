package avatar

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/muhammadheryan/contacts-api/cmd/config"
	"github.com/muhammadheryan/contacts-api/constant"
	accountrepo "github.com/muhammadheryan/contacts-api/repository/account"
	"github.com/muhammadheryan/contacts-api/utils/errors"
	imagex "github.com/muhammadheryan/contacts-api/utils/image"
	"github.com/muhammadheryan/contacts-api/utils/logger"
	"go.uber.org/zap"
)

type AvatarApp interface {
	Upload(ctx context.Context, file []byte) (string, error)
	UpdateUserAvatar(ctx context.Context, userID uint64, file []byte, originalName string) (string, error)
}

type avatarAppImpl struct {
	config      *config.Config
	accountRepo accountrepo.AccountRepository
}

func NewAvatarApp(config *config.Config, accountRepo accountrepo.AccountRepository) AvatarApp {
	return &avatarAppImpl{
		config:      config,
		accountRepo: accountRepo,
	}
}

// Upload processes an anonymous avatar and writes it into the public avatar
// directory. The name is derived from the upload time; two uploads within
// the same millisecond would collide. That limitation is accepted, the
// anonymous path has no identity to name the file after.
func (s *avatarAppImpl) Upload(ctx context.Context, file []byte) (string, error) {
	if len(file) == 0 {
		return "", errors.SetCustomError(constant.ErrNoFile)
	}

	processed, err := s.process(file)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%d.jpeg", time.Now().UnixMilli())
	if err := os.WriteFile(filepath.Join(s.config.Avatar.Dir, fileName), processed, 0o644); err != nil {
		logger.Error("[Upload] err writing avatar", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return s.publicPath(fileName), nil
}

// UpdateUserAvatar processes an authenticated user's avatar, persists the
// public URL on the account and only then moves the file onto its final
// name. The name reuses the account id so a new upload replaces the old
// file instead of orphaning it.
func (s *avatarAppImpl) UpdateUserAvatar(ctx context.Context, userID uint64, file []byte, originalName string) (string, error) {
	if len(file) == 0 || userID == 0 {
		return "", errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Bad request")
	}

	processed, err := s.process(file)
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".jpeg"
	}
	fileName := fmt.Sprintf("%d%s", userID, ext)
	finalPath := filepath.Join(s.config.Avatar.Dir, fileName)

	// Write to a temp name first and rename only after the record update
	// commits, so the stored URL never references an uncommitted file and
	// a failed write never updates the URL.
	tmp, err := os.CreateTemp(s.config.Avatar.Dir, fileName+".tmp-*")
	if err != nil {
		logger.Error("[UpdateUserAvatar] err creating temp file", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(processed); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		logger.Error("[UpdateUserAvatar] err writing avatar", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		logger.Error("[UpdateUserAvatar] err closing avatar file", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	avatarURL := s.publicPath(fileName)
	if err := s.accountRepo.UpdateAvatarURL(ctx, userID, avatarURL); err != nil {
		os.Remove(tmpPath)
		logger.Error("[UpdateUserAvatar] err UpdateAvatarURL", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		logger.Error("[UpdateUserAvatar] err renaming avatar", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return avatarURL, nil
}

func (s *avatarAppImpl) process(file []byte) ([]byte, error) {
	processed, err := imagex.ProcessAvatar(file)
	if err != nil {
		if stderrors.Is(err, imagex.ErrDecode) {
			return nil, errors.SetCustomError(constant.ErrUnsupportedImage)
		}
		logger.Error("[process] err processing avatar", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return processed, nil
}

func (s *avatarAppImpl) publicPath(fileName string) string {
	return strings.TrimSuffix(s.config.Avatar.PublicPrefix, "/") + "/" + fileName
}
