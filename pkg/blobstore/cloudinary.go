// Package blobstore uploads user evidence and profile pictures to the media host.
package blobstore

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const DefaultFolder = "discipline-tracker"

var ErrEmptyURL = errors.New("upload returned no url")

type CloudinaryCfg struct {
	CloudName string
	APIKey    string
	APISecret string
}

type assetUploader interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

type CloudinaryStore struct {
	upload assetUploader
}

func NewCloudinary(cfg CloudinaryCfg) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, errors.New("creating cloudinary client error: " + err.Error())
	}
	return &CloudinaryStore{upload: &cld.Upload}, nil
}

// Upload stores the object under folder and returns its stable https URL.
func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	if folder == "" {
		folder = DefaultFolder
	}
	res, err := s.upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", errors.New("uploading to cloudinary error: " + err.Error())
	}
	if res == nil || res.SecureURL == "" {
		return "", ErrEmptyURL
	}
	return res.SecureURL, nil
}
