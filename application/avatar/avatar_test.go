package avatar_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	appavatar "github.com/muhammadheryan/contacts-api/application/avatar"
	"github.com/muhammadheryan/contacts-api/cmd/config"
	"github.com/muhammadheryan/contacts-api/constant"
	accountmocks "github.com/muhammadheryan/contacts-api/mocks/repository/account"
	cerr "github.com/muhammadheryan/contacts-api/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Avatar: config.AvatarConfig{
			Dir:           dir,
			PublicPrefix:  "/avatars",
			MaxUploadSize: 5 << 20,
		},
	}
}

// testImagePNG builds a small PNG in memory so the tests carry no fixtures.
func testImagePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()

	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestAvatarApp_Upload(t *testing.T) {
	t.Run("success: writes a 250x250 jpeg and returns its public path", func(t *testing.T) {
		dir := t.TempDir()
		app := appavatar.NewAvatarApp(testConfig(dir), accountmocks.NewAccountRepository(t))

		got, err := app.Upload(context.Background(), testImagePNG(t, 600, 400))
		if err != nil {
			t.Fatalf("Upload() error = %v", err)
		}
		if !strings.HasPrefix(got, "/avatars/") || !strings.HasSuffix(got, ".jpeg") {
			t.Fatalf("Upload() path = %s, want /avatars/<name>.jpeg", got)
		}

		fileName := strings.TrimPrefix(got, "/avatars/")
		data, err := os.ReadFile(filepath.Join(dir, fileName))
		if err != nil {
			t.Fatalf("read written avatar: %v", err)
		}

		img, err := jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("written avatar is not a jpeg: %v", err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != 250 || bounds.Dy() != 250 {
			t.Fatalf("avatar size = %dx%d, want 250x250", bounds.Dx(), bounds.Dy())
		}
	})

	t.Run("error: empty file", func(t *testing.T) {
		app := appavatar.NewAvatarApp(testConfig(t.TempDir()), accountmocks.NewAccountRepository(t))

		_, err := app.Upload(context.Background(), nil)
		if err == nil {
			t.Fatal("Upload() should fail without a file")
		}
		assertErrCode(t, err, constant.ErrNoFile)
	})

	t.Run("error: not an image, nothing written", func(t *testing.T) {
		dir := t.TempDir()
		app := appavatar.NewAvatarApp(testConfig(dir), accountmocks.NewAccountRepository(t))

		_, err := app.Upload(context.Background(), []byte("definitely not an image"))
		if err == nil {
			t.Fatal("Upload() should reject non-image data")
		}
		assertErrCode(t, err, constant.ErrUnsupportedImage)

		entries, readErr := os.ReadDir(dir)
		if readErr != nil {
			t.Fatalf("read avatar dir: %v", readErr)
		}
		if len(entries) != 0 {
			t.Fatalf("avatar dir should stay empty, found %d entries", len(entries))
		}
	})
}

func TestAvatarApp_UpdateUserAvatar(t *testing.T) {
	t.Run("success: persists url then renames onto the final name", func(t *testing.T) {
		dir := t.TempDir()
		accountRepo := accountmocks.NewAccountRepository(t)
		accountRepo.
			On("UpdateAvatarURL", mock.Anything, uint64(7), "/avatars/7.png").
			Return(nil).
			Once()

		app := appavatar.NewAvatarApp(testConfig(dir), accountRepo)
		got, err := app.UpdateUserAvatar(context.Background(), 7, testImagePNG(t, 300, 300), "me.png")
		if err != nil {
			t.Fatalf("UpdateUserAvatar() error = %v", err)
		}
		if got != "/avatars/7.png" {
			t.Fatalf("UpdateUserAvatar() url = %s, want /avatars/7.png", got)
		}

		if _, err := os.Stat(filepath.Join(dir, "7.png")); err != nil {
			t.Fatalf("final avatar file missing: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read avatar dir: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("avatar dir should hold only the final file, found %d entries", len(entries))
		}
	})

	t.Run("success: missing extension falls back to jpeg", func(t *testing.T) {
		dir := t.TempDir()
		accountRepo := accountmocks.NewAccountRepository(t)
		accountRepo.
			On("UpdateAvatarURL", mock.Anything, uint64(3), "/avatars/3.jpeg").
			Return(nil).
			Once()

		app := appavatar.NewAvatarApp(testConfig(dir), accountRepo)
		got, err := app.UpdateUserAvatar(context.Background(), 3, testImagePNG(t, 100, 100), "avatar")
		if err != nil {
			t.Fatalf("UpdateUserAvatar() error = %v", err)
		}
		if got != "/avatars/3.jpeg" {
			t.Fatalf("UpdateUserAvatar() url = %s, want /avatars/3.jpeg", got)
		}
	})

	t.Run("error: missing user id", func(t *testing.T) {
		app := appavatar.NewAvatarApp(testConfig(t.TempDir()), accountmocks.NewAccountRepository(t))

		_, err := app.UpdateUserAvatar(context.Background(), 0, testImagePNG(t, 100, 100), "me.png")
		if err == nil {
			t.Fatal("UpdateUserAvatar() should fail without a user id")
		}
		if err.Error() != "Bad request" {
			t.Fatalf("error message = %q, want %q", err.Error(), "Bad request")
		}
	})

	t.Run("error: failed record update leaves no file behind", func(t *testing.T) {
		dir := t.TempDir()
		accountRepo := accountmocks.NewAccountRepository(t)
		accountRepo.
			On("UpdateAvatarURL", mock.Anything, uint64(7), "/avatars/7.png").
			Return(errors.New("db error")).
			Once()

		app := appavatar.NewAvatarApp(testConfig(dir), accountRepo)
		_, err := app.UpdateUserAvatar(context.Background(), 7, testImagePNG(t, 300, 300), "me.png")
		if err == nil {
			t.Fatal("UpdateUserAvatar() should fail when the record update fails")
		}
		assertErrCode(t, err, constant.ErrInternal)

		entries, readErr := os.ReadDir(dir)
		if readErr != nil {
			t.Fatalf("read avatar dir: %v", readErr)
		}
		if len(entries) != 0 {
			t.Fatalf("avatar dir should stay empty after rollback, found %d entries", len(entries))
		}
	})
}
