// Package s3store provides the object store adapter backed by Amazon S3.
package s3store

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/convergeci/layerline/core"
)

// Store wraps an S3 client behind the layerline object store contract.
type Store struct {
	client *s3.Client
	region string
}

// New creates a Store. The region is used for bucket creation location
// constraints and may be empty for us-east-1.
func New(client *s3.Client, region string) *Store {
	return &Store{client: client, region: region}
}

// Get fetches an object and its metadata. The caller must close the
// returned body. Returns core.ErrNotFound when the key (or the requested
// object version) does not exist.
func (s *Store) Get(ctx context.Context, loc core.ObjectLocation) (*core.StoredObject, error) {
	in := &s3.GetObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	}
	if loc.VersionID != "" {
		in.VersionId = aws.String(loc.VersionID)
	}
	out, err := s.client.GetObject(ctx, in)
	if err != nil {
		return nil, mapError(err)
	}
	metadata := make(map[string]string, len(out.Metadata))
	for k, v := range out.Metadata {
		metadata[strings.ToLower(k)] = v
	}
	return &core.StoredObject{
		Body:      out.Body,
		Metadata:  metadata,
		VersionID: aws.ToString(out.VersionId),
	}, nil
}

// Put writes an object with the given metadata attached. Returns the
// store-assigned version ID, or empty when the bucket is unversioned.
func (s *Store) Put(ctx context.Context, loc core.ObjectLocation, body io.Reader, metadata map[string]string) (string, error) {
	out, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:   aws.String(loc.Bucket),
		Key:      aws.String(loc.Key),
		Body:     body,
		Metadata: metadata,
	})
	if err != nil {
		return "", mapError(err)
	}
	return aws.ToString(out.VersionId), nil
}

// BucketExists reports whether the bucket exists and is accessible.
func (s *Store) BucketExists(ctx context.Context, bucket string) (bool, error) {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, mapError(err)
	}
	return true, nil
}

// CreateBucket creates the bucket in the store's region.
func (s *Store) CreateBucket(ctx context.Context, bucket string) error {
	in := &s3.CreateBucketInput{Bucket: aws.String(bucket)}
	// us-east-1 rejects an explicit location constraint.
	if s.region != "" && s.region != "us-east-1" {
		in.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.region),
		}
	}
	if _, err := s.client.CreateBucket(ctx, in); err != nil {
		return mapError(err)
	}
	return nil
}

// DeleteBucket removes an empty bucket.
func (s *Store) DeleteBucket(ctx context.Context, bucket string) error {
	if _, err := s.client.DeleteBucket(ctx, &s3.DeleteBucketInput{Bucket: aws.String(bucket)}); err != nil {
		return mapError(err)
	}
	return nil
}

// ListObjectVersions walks every object version and delete marker in the
// bucket, following the key/version marker pair across pages.
func (s *Store) ListObjectVersions(ctx context.Context, bucket string) ([]core.ObjectLocation, error) {
	var all []core.ObjectLocation
	in := &s3.ListObjectVersionsInput{Bucket: aws.String(bucket)}
	for {
		out, err := s.client.ListObjectVersions(ctx, in)
		if err != nil {
			return nil, mapError(err)
		}
		for _, v := range out.Versions {
			all = append(all, core.ObjectLocation{
				Bucket:    bucket,
				Key:       aws.ToString(v.Key),
				VersionID: aws.ToString(v.VersionId),
			})
		}
		for _, m := range out.DeleteMarkers {
			all = append(all, core.ObjectLocation{
				Bucket:    bucket,
				Key:       aws.ToString(m.Key),
				VersionID: aws.ToString(m.VersionId),
			})
		}
		if !aws.ToBool(out.IsTruncated) {
			return all, nil
		}
		in.KeyMarker = out.NextKeyMarker
		in.VersionIdMarker = out.NextVersionIdMarker
	}
}

// DeleteObjects removes the given object versions in batches of up to
// the S3 per-request limit.
func (s *Store) DeleteObjects(ctx context.Context, bucket string, objects []core.ObjectLocation) error {
	const batchSize = 1000

	for len(objects) > 0 {
		batch := objects
		if len(batch) > batchSize {
			batch = batch[:batchSize]
		}
		objects = objects[len(batch):]

		ids := make([]types.ObjectIdentifier, 0, len(batch))
		for _, o := range batch {
			id := types.ObjectIdentifier{Key: aws.String(o.Key)}
			if o.VersionID != "" {
				id.VersionId = aws.String(o.VersionID)
			}
			ids = append(ids, id)
		}
		_, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &types.Delete{Objects: ids, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return mapError(err)
		}
	}
	return nil
}
