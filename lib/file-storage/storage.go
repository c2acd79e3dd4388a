package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"gig-works-backend/config"
	s3client "gig-works-backend/s3"
)

// Provider stores report photos in the S3-compatible object store.
// Objects are keyed reports/<reportID>/<fileName>.
type Provider interface {
	UploadReportPhoto(ctx context.Context, reportID, fileName string, file []byte) (objectKey string, err error)
	GetReportPhoto(ctx context.Context, objectKey string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		s3client: s3client.Client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadReportPhoto(ctx context.Context, reportID, fileName string, file []byte) (string, error) {
	if i.s3client == nil {
		return "", errors.New("file storage is not configured")
	}
	objectKey := fmt.Sprintf("reports/%s/%s", reportID, fileName)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.Bucket, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload the report photo")
	}
	return objectKey, nil
}

func (i impl) GetReportPhoto(ctx context.Context, objectKey string) ([]byte, error) {
	if i.s3client == nil {
		return nil, errors.New("file storage is not configured")
	}
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.Bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get the report photo")
	}
	defer obj.Close()
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read the report photo")
	}
	return body, nil
}
