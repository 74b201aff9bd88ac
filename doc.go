// Package layerline reconciles named AWS Lambda layers against the
// bundle that should back them, making exactly the changes needed to
// converge: upload to S3 only when the stored checksum differs, publish
// a new layer version only when no published version matches the local
// content and runtime list, and tear down every version when the layer
// should not exist.
//
// # Basic Usage
//
// Create a client and reconcile a layer:
//
//	client, err := layerline.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Reconcile(ctx, layerline.DesiredState{
//	    Name:   "my-layer",
//	    Bucket: "generic-s3-bucket",
//	    Key:    "bundle/my-layer.zip",
//	    Path:   "/home/me/layer.zip",
//	    State:  layerline.Present,
//	})
//
// Result reports whether anything changed, the current version number
// and ARNs, and whether the degraded checksum path had to download the
// stored object. Calling Reconcile twice with the same bundle is a
// no-op on the second call.
//
// # Change Detection
//
// Content equality is judged by SHA-256 checksums (base64, the same
// form the management plane records as CodeSha256). The local bundle
// checksum is compared both against the checksum stored as S3 object
// metadata and against every previously published version, so a bundle
// that matches an old version is re-published by reference instead of
// re-uploaded.
//
// # Configuration
//
// By default AWS credentials and region are resolved the standard way
// (environment, shared config, IMDS). Use WithRegion, WithS3Endpoint,
// WithLambdaEndpoint, and WithStaticCredentials to override, e.g. for
// localstack-style endpoints.
package layerline
