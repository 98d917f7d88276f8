package oss

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"ClipHive.com/config"
	"ClipHive.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

const (
	videoBucket   = "video"
	pictureBucket = "picture"
	location      = "us-east-1"

	MediaKindVideo = "video"
	MediaKindImage = "image"
)

// Store wraps the MinIO client that holds every binary asset. Callers hand it
// a local temp file; the temp file is removed after the upload attempt whether
// or not it succeeded, so a failed upload never leaks disk space and never
// leaves a database row pointing at a missing asset (the row is only written
// after Upload returns).
type Store struct {
	client     *minio.Client
	publicHost string
}

func NewStore(cfg *config.Config) (*Store, error) {
	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKeyId, cfg.Minio.SecretAccessKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to create MinIO client")
	}
	hlog.Infof("Connected MinIO at %s", cfg.Minio.Endpoint)
	return &Store{client: client, publicHost: cfg.Minio.PublicHost}, nil
}

func (s *Store) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: location}); err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

// UploadVideo pushes a video file and reports its probed duration.
func (s *Store) UploadVideo(ctx context.Context, localPath string, vid int64) (string, float64, error) {
	defer os.Remove(localPath)

	duration, err := utils.GetVideoDuration(localPath)
	if err != nil {
		return "", 0, err
	}
	if err := s.ensureBucket(ctx, videoBucket); err != nil {
		return "", 0, err
	}
	objectName := fmt.Sprintf("video/%d/video.mp4", vid)
	if _, err := s.client.FPutObject(ctx, videoBucket, objectName, localPath,
		minio.PutObjectOptions{ContentType: "video/mp4"}); err != nil {
		return "", 0, errors.WithMessage(err, "Failed to upload video")
	}
	return s.objectUrl(videoBucket, objectName), duration, nil
}

// UploadImage pushes a cover/thumbnail image.
func (s *Store) UploadImage(ctx context.Context, localPath string, vid int64) (string, error) {
	defer os.Remove(localPath)

	if err := s.ensureBucket(ctx, pictureBucket); err != nil {
		return "", err
	}
	objectName := fmt.Sprintf("cover/%d/cover.jpg", vid)
	if _, err := s.client.FPutObject(ctx, pictureBucket, objectName, localPath,
		minio.PutObjectOptions{ContentType: "image/jpeg"}); err != nil {
		return "", errors.WithMessage(err, "Failed to upload cover")
	}
	return s.objectUrl(pictureBucket, objectName), nil
}

// Delete removes a stored asset given its public URL.
func (s *Store) Delete(ctx context.Context, rawUrl string, kind string) error {
	bucket, objectName, err := s.parseObjectUrl(rawUrl)
	if err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return errors.WithMessagef(err, "Failed to delete %s asset %s", kind, objectName)
	}
	return nil
}

func (s *Store) objectUrl(bucket, objectName string) string {
	return fmt.Sprintf("http://%s/%s/%s", s.publicHost, bucket, objectName)
}

func (s *Store) parseObjectUrl(rawUrl string) (bucket, objectName string, err error) {
	u, err := url.Parse(rawUrl)
	if err != nil {
		return "", "", errors.WithMessage(err, "Failed to parse asset url")
	}
	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf("asset url %q has no bucket/object path", rawUrl)
	}
	return parts[0], parts[1], nil
}
