package utils

import (
	"context"
	"fmt"
	"mime/multipart"

	"slotify/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ProfileImageFolder is the cloudinary folder for account profile images.
const ProfileImageFolder = "slotify/profiles"

// Cloudinary initializes a Cloudinary client from the configured URL.
func Cloudinary() (*cloudinary.Cloudinary, error) {
	url := config.AppConfig.CloudinaryURL
	if url == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}
	return cld, nil
}

// UploadProfileImage stores a profile image and returns its public URL and
// public ID (the latter for deletion on registration rollback).
func UploadProfileImage(ctx context.Context, cld *cloudinary.Cloudinary, file multipart.File) (url, publicID string, err error) {
	resp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: ProfileImageFolder})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload profile image: %w", err)
	}
	return resp.SecureURL, resp.PublicID, nil
}

// DeleteProfileImage removes a previously uploaded profile image.
func DeleteProfileImage(ctx context.Context, cld *cloudinary.Cloudinary, publicID string) error {
	_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete profile image %s: %w", publicID, err)
	}
	return nil
}
