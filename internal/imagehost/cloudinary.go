package imagehost

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryHost implements Host on Cloudinary. The upload's public ID is
// the deletion handle.
type CloudinaryHost struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(cloudName, apiKey, apiSecret string) (*CloudinaryHost, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, ErrNotConfigured
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("initialize cloudinary: %w", err)
	}
	return &CloudinaryHost{cld: cld}, nil
}

func (h *CloudinaryHost) Upload(ctx context.Context, file io.Reader, filename, folder string) (*Asset, error) {
	publicID := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), stripExt(filename))

	resp, err := h.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}

	return &Asset{
		URL:    resp.SecureURL,
		Handle: resp.PublicID,
	}, nil
}

func (h *CloudinaryHost) Delete(ctx context.Context, handle string) error {
	resp, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: handle})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: %s", resp.Result)
	}
	return nil
}

func stripExt(filename string) string {
	base := path.Base(filename)
	return strings.TrimSuffix(base, path.Ext(base))
}
