// Package imagestore fetches stored card images referenced by a card's
// image_storage URL and saves them locally.
package imagestore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/cardscan/internal/filex"
	"github.com/dmitrijs2005/cardscan/internal/netx"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3API is the subset of the S3 client used to read images.
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Options struct {
	Region      string
	Endpoint    string
	AccessKey   string
	SecretKey   string
	DownloadDir string
	HTTPClient  *http.Client
}

// Store reads images from S3 when the URL names a bucket and falls back to a
// plain GET for any other URL.
type Store struct {
	s3   S3API
	http *http.Client
	dir  string
}

func New(ctx context.Context, opts Options) (*Store, error) {
	var creds aws.CredentialsProvider = aws.AnonymousCredentials{}
	if opts.AccessKey != "" {
		creds = credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")
	}

	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(creds),
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewWithAPI(client, opts.HTTPClient, opts.DownloadDir), nil
}

func NewWithAPI(api S3API, hc *http.Client, dir string) *Store {
	return &Store{s3: api, http: hc, dir: dir}
}

// ParseS3URL extracts bucket and key from s3://bucket/key and
// https://bucket.s3[.region].amazonaws.com/key URLs.
func ParseS3URL(raw string) (bucket, key string, ok bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", false
	}

	key = strings.TrimPrefix(u.Path, "/")

	switch {
	case u.Scheme == "s3":
		bucket = u.Host
	case strings.HasSuffix(u.Hostname(), ".amazonaws.com"):
		host := strings.TrimSuffix(u.Hostname(), ".amazonaws.com")
		i := strings.Index(host, ".s3")
		if i <= 0 {
			return "", "", false
		}
		bucket = host[:i]
	default:
		return "", "", false
	}

	if bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// Fetch returns the image bytes referenced by rawURL.
func (s *Store) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("card has no stored image")
	}

	bucket, key, ok := ParseS3URL(rawURL)
	if !ok {
		return netx.Download(ctx, s.http, rawURL)
	}

	out, err := s.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// Download fetches rawURL and writes it into the download directory under
// the URL's base name. It returns the written path.
func (s *Store) Download(ctx context.Context, rawURL string) (string, error) {
	data, err := s.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	dir, err := filex.EnsureDir(s.dir)
	if err != nil {
		return "", err
	}

	return filex.WriteInto(dir, fileName(rawURL), data)
}

func fileName(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(rawURL)
}
