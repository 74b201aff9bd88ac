package layerline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/convergeci/layerline/core"
	"github.com/convergeci/layerline/internal/checksum"
)

// fakeObject is one stored object version.
type fakeObject struct {
	data      []byte
	metadata  map[string]string
	versionID string
}

// fakeStore is an in-memory object store. With versioning enabled each
// Put appends a new version and returns its ID, like a versioned S3
// bucket; without it, Put overwrites in place and returns no ID.
type fakeStore struct {
	versioned bool
	buckets   map[string]bool
	objects   map[string][]fakeObject
	nextID    int

	putCalls int
	getCalls int
}

func newFakeStore(versioned bool) *fakeStore {
	return &fakeStore{
		versioned: versioned,
		buckets:   map[string]bool{},
		objects:   map[string][]fakeObject{},
	}
}

func objectKey(bucket, key string) string {
	return bucket + "/" + key
}

func (s *fakeStore) Get(_ context.Context, loc core.ObjectLocation) (*core.StoredObject, error) {
	s.getCalls++
	versions := s.objects[objectKey(loc.Bucket, loc.Key)]
	if len(versions) == 0 {
		return nil, core.ErrNotFound
	}
	obj := versions[len(versions)-1]
	if loc.VersionID != "" {
		found := false
		for _, v := range versions {
			if v.versionID == loc.VersionID {
				obj = v
				found = true
				break
			}
		}
		if !found {
			return nil, core.ErrNotFound
		}
	}
	return &core.StoredObject{
		Body:      io.NopCloser(bytes.NewReader(obj.data)),
		Metadata:  maps.Clone(obj.metadata),
		VersionID: obj.versionID,
	}, nil
}

func (s *fakeStore) Put(_ context.Context, loc core.ObjectLocation, body io.Reader, metadata map[string]string) (string, error) {
	s.putCalls++
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	obj := fakeObject{data: data, metadata: maps.Clone(metadata)}
	k := objectKey(loc.Bucket, loc.Key)
	if s.versioned {
		s.nextID++
		obj.versionID = fmt.Sprintf("obj-v%d", s.nextID)
		s.objects[k] = append(s.objects[k], obj)
	} else {
		s.objects[k] = []fakeObject{obj}
	}
	return obj.versionID, nil
}

func (s *fakeStore) BucketExists(_ context.Context, bucket string) (bool, error) {
	return s.buckets[bucket], nil
}

func (s *fakeStore) CreateBucket(_ context.Context, bucket string) error {
	s.buckets[bucket] = true
	return nil
}

func (s *fakeStore) DeleteBucket(_ context.Context, bucket string) error {
	if !s.buckets[bucket] {
		return core.ErrNotFound
	}
	for k := range s.objects {
		if len(k) > len(bucket) && k[:len(bucket)+1] == bucket+"/" && len(s.objects[k]) > 0 {
			return fmt.Errorf("bucket %s not empty", bucket)
		}
	}
	delete(s.buckets, bucket)
	return nil
}

func (s *fakeStore) ListObjectVersions(_ context.Context, bucket string) ([]core.ObjectLocation, error) {
	if !s.buckets[bucket] {
		return nil, core.ErrNotFound
	}
	var all []core.ObjectLocation
	for k, versions := range s.objects {
		if len(k) <= len(bucket) || k[:len(bucket)+1] != bucket+"/" {
			continue
		}
		for _, v := range versions {
			all = append(all, core.ObjectLocation{
				Bucket:    bucket,
				Key:       k[len(bucket)+1:],
				VersionID: v.versionID,
			})
		}
	}
	return all, nil
}

func (s *fakeStore) DeleteObjects(_ context.Context, bucket string, objects []core.ObjectLocation) error {
	for _, o := range objects {
		k := objectKey(bucket, o.Key)
		if o.VersionID == "" {
			delete(s.objects, k)
			continue
		}
		kept := s.objects[k][:0]
		for _, v := range s.objects[k] {
			if v.versionID != o.VersionID {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			delete(s.objects, k)
		} else {
			s.objects[k] = kept
		}
	}
	return nil
}

// fakeLayers is an in-memory management plane. Publish reads the object
// content out of the paired store and records its checksum, the way the
// real plane computes CodeSha256 from the referenced object.
type fakeLayers struct {
	store    *fakeStore
	versions map[string][]core.LayerVersion
	next     map[string]int64

	// pageSize splits listings into pages; zero means one page.
	// repeatAcrossPages re-yields the previous page's last entry, as the
	// remote API is allowed to.
	pageSize          int
	repeatAcrossPages bool

	publishCalls int
	deleteCalls  int

	// createFunctionErrs is popped one per CreateFunction call; once
	// drained, calls succeed.
	createFunctionErrs []error
	functions          map[string]string
}

func newFakeLayers(store *fakeStore) *fakeLayers {
	return &fakeLayers{
		store:     store,
		versions:  map[string][]core.LayerVersion{},
		next:      map[string]int64{},
		functions: map[string]string{},
	}
}

func (l *fakeLayers) ListVersions(_ context.Context, name, marker string) (core.VersionPage, error) {
	all := l.versions[name]
	numbers := make([]int64, 0, len(all))
	for _, v := range all {
		numbers = append(numbers, v.Version)
	}

	if l.pageSize <= 0 || len(numbers) <= l.pageSize {
		if marker != "" {
			return core.VersionPage{}, fmt.Errorf("unexpected marker %q", marker)
		}
		return core.VersionPage{Versions: numbers}, nil
	}

	start := 0
	if marker != "" {
		var err error
		start, err = strconv.Atoi(marker)
		if err != nil {
			return core.VersionPage{}, err
		}
	}
	end := min(start+l.pageSize, len(numbers))
	page := core.VersionPage{Versions: numbers[start:end]}
	if l.repeatAcrossPages && start > 0 {
		page.Versions = append([]int64{numbers[start-1]}, page.Versions...)
	}
	if end < len(numbers) {
		page.NextMarker = strconv.Itoa(end)
	}
	return page, nil
}

func (l *fakeLayers) GetVersion(_ context.Context, name string, number int64) (core.LayerVersion, error) {
	for _, v := range l.versions[name] {
		if v.Version == number {
			return v, nil
		}
	}
	return core.LayerVersion{}, core.ErrNotFound
}

func (l *fakeLayers) Publish(ctx context.Context, in core.PublishInput) (core.LayerVersion, error) {
	l.publishCalls++
	obj, err := l.store.Get(ctx, core.ObjectLocation{
		Bucket:    in.Bucket,
		Key:       in.Key,
		VersionID: in.ObjectVersion,
	})
	if err != nil {
		return core.LayerVersion{}, err
	}
	defer obj.Body.Close()
	sum, err := checksum.Reader(obj.Body)
	if err != nil {
		return core.LayerVersion{}, err
	}

	l.next[in.Name]++
	n := l.next[in.Name]
	version := core.LayerVersion{
		LayerName:  in.Name,
		Version:    n,
		LayerArn:   "arn:aws:lambda:us-east-1:123456789012:layer:" + in.Name,
		VersionArn: fmt.Sprintf("arn:aws:lambda:us-east-1:123456789012:layer:%s:%d", in.Name, n),
		Checksum:   sum,
		Runtimes:   in.Runtimes,
	}
	l.versions[in.Name] = append(l.versions[in.Name], version)
	return version, nil
}

func (l *fakeLayers) DeleteVersion(_ context.Context, name string, number int64) error {
	l.deleteCalls++
	kept := l.versions[name][:0]
	found := false
	for _, v := range l.versions[name] {
		if v.Version == number {
			found = true
			continue
		}
		kept = append(kept, v)
	}
	if !found {
		return core.ErrNotFound
	}
	l.versions[name] = kept
	return nil
}

func (l *fakeLayers) CreateFunction(_ context.Context, spec core.FunctionSpec) (string, error) {
	if len(l.createFunctionErrs) > 0 {
		err := l.createFunctionErrs[0]
		l.createFunctionErrs = l.createFunctionErrs[1:]
		return "", err
	}
	arn := "arn:aws:lambda:us-east-1:123456789012:function:" + spec.Name
	l.functions[spec.Name] = arn
	return arn, nil
}

func (l *fakeLayers) DeleteFunction(_ context.Context, name string) error {
	if _, ok := l.functions[name]; !ok {
		return core.ErrNotFound
	}
	delete(l.functions, name)
	return nil
}

// newTestClient wires a client directly onto fakes, skipping AWS config
// resolution, with a zero-wait retry policy.
func newTestClient(store *fakeStore, layers *fakeLayers) *Client {
	return &Client{
		store:       store,
		layers:      layers,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		metadataKey: DefaultMetadataKey,
		retry:       core.RetryPolicy{MaxAttempts: 3},
	}
}

// writeBundle writes a bundle file and returns its path and checksum.
func writeBundle(t *testing.T, dir, name, content string) (string, string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	sum, err := checksum.File(path)
	require.NoError(t, err)
	return path, sum
}
