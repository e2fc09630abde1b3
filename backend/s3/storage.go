package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/mwantia/mirrorfs/data"
)

const (
	codeNoSuchKey           = "NoSuchKey"
	codeNoSuchBucket        = "NoSuchBucket"
	codeBucketAlreadyOwned  = "BucketAlreadyOwnedByYou"
	codeBucketAlreadyExists = "BucketAlreadyExists"
)

func (sb *S3Backend) Exists(ctx context.Context, container, key string) bool {
	_, err := sb.client.StatObject(ctx, container, key, minio.StatObjectOptions{})
	return err == nil
}

func (sb *S3Backend) Upload(ctx context.Context, r io.Reader, size int64, container, key, contentType string) error {
	if err := sb.ensureBucket(ctx, container); err != nil {
		return err
	}

	_, err := sb.client.PutObject(ctx, container, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (sb *S3Backend) Delete(ctx context.Context, container, key string) error {
	// RemoveObject succeeds for missing keys, so existence is checked first
	if _, err := sb.client.StatObject(ctx, container, key, minio.StatObjectOptions{}); err != nil {
		if isNotFound(err) {
			return data.ErrNotExist
		}
		return err
	}

	return sb.client.RemoveObject(ctx, container, key, minio.RemoveObjectOptions{})
}

func (sb *S3Backend) DeleteByPrefix(ctx context.Context, container, prefix string) (int, error) {
	objectsCh := make(chan minio.ObjectInfo)
	listed := 0

	var listErr error
	go func() {
		defer close(objectsCh)

		for object := range sb.client.ListObjects(ctx, container, minio.ListObjectsOptions{
			Prefix:    prefix,
			Recursive: true,
		}) {
			if object.Err != nil {
				listErr = object.Err
				return
			}
			listed++
			objectsCh <- object
		}
	}()

	errs := data.Errors{}
	failed := 0
	for removeErr := range sb.client.RemoveObjects(ctx, container, objectsCh, minio.RemoveObjectsOptions{}) {
		failed++
		errs.Add(fmt.Errorf("remove '%s': %w", removeErr.ObjectName, removeErr.Err))
	}

	// objectsCh is closed and RemoveObjects drained, listing has finished
	if listErr != nil && minio.ToErrorResponse(listErr).Code != codeNoSuchBucket {
		errs.Add(listErr)
	}

	return listed - failed, errs.Errors()
}

func (sb *S3Backend) Download(ctx context.Context, container, key string) (io.ReadCloser, bool, error) {
	object, err := sb.client.GetObject(ctx, container, key, minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	// GetObject is lazy; Stat surfaces a missing key
	if _, err := object.Stat(); err != nil {
		object.Close()
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return object, true, nil
}

func (sb *S3Backend) SetContentTypeForContainer(ctx context.Context, container, contentType string) (int, error) {
	errs := data.Errors{}
	updated := 0

	for object := range sb.client.ListObjects(ctx, container, minio.ListObjectsOptions{
		Recursive: true,
	}) {
		if object.Err != nil {
			errs.Add(object.Err)
			break
		}

		// Copying an object onto itself with REPLACE rewrites its metadata
		_, err := sb.client.CopyObject(ctx, minio.CopyDestOptions{
			Bucket:          container,
			Object:          object.Key,
			ReplaceMetadata: true,
			UserMetadata: map[string]string{
				"Content-Type": contentType,
			},
		}, minio.CopySrcOptions{
			Bucket: container,
			Object: object.Key,
		})
		if err != nil {
			errs.Add(fmt.Errorf("update '%s': %w", object.Key, err))
			continue
		}
		updated++
	}

	return updated, errs.Errors()
}

func (sb *S3Backend) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := sb.client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = sb.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{
		Region: sb.config.Region,
	})
	if err != nil {
		// Lost a creation race against another writer
		code := minio.ToErrorResponse(err).Code
		if code == codeBucketAlreadyOwned || code == codeBucketAlreadyExists {
			return nil
		}
		return err
	}

	return nil
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == codeNoSuchKey || code == codeNoSuchBucket
}
