package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"gig-works-backend/config"
	s3client "gig-works-backend/s3"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKey, config.Conf.S3.SecretKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to init the S3 client")
		return
	}

	// connectivity check
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 connection check failed, ListBuckets returned an error")
	}

	s3client.Client = minioClient
	if err = s3client.EnsureBucket(context.Background()); err != nil {
		log.WithError(err).Error("failed to ensure the S3 bucket")
	}
	log.Info("S3 client initialized")
}
