// Mood Selector
// Copyright (c) 2026 The Mood Selector Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Mood Selector.
//
// Mood Selector is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mood Selector is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mood Selector.  If not, see <http://www.gnu.org/licenses/>.

package presets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"
)

const defaultS3Region = "us-east-1"

// S3Config describes a bucket holding preset documents. Keys are
// Prefix + name + ".json".
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string // optional, for MinIO and other S3-compatible servers
	Prefix          string
	AccessKeyID     string // optional, falls back to the default credential chain
	SecretAccessKey string
	PathStyle       bool
}

// S3Registry stores presets as objects in one S3-compatible bucket.
type S3Registry struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3Registry(ctx context.Context, cfg S3Config, optFns ...func(*s3.Options)) (*S3Registry, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket required")
	}

	region := cfg.Region
	if region == "" {
		region = defaultS3Region
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		// S3-compatible servers often reject the newer default checksums
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
		for _, fn := range optFns {
			fn(o)
		}
	})

	return &S3Registry{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

func (r *S3Registry) key(name string) string {
	return r.prefix + name + Ext
}

func (r *S3Registry) List(ctx context.Context) ([]string, error) {
	names := []string{}

	paginator := s3.NewListObjectsV2Paginator(r.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(r.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to list presets: %w", ErrIO, err)
		}
		for _, obj := range page.Contents {
			rest := strings.TrimPrefix(aws.ToString(obj.Key), r.prefix)
			// only direct children of the prefix, like a directory scan
			if strings.Contains(rest, "/") {
				continue
			}
			if name, ok := nameFromKey(rest); ok {
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)
	return names, nil
}

func (r *S3Registry) Load(ctx context.Context, name string) ([]string, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key(name)),
	})
	if isNotFound(err) {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	} else if err != nil {
		return nil, fmt.Errorf("%w: failed to get preset %s: %w", ErrIO, name, err)
	}
	defer func() {
		if closeErr := out.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing preset object body")
		}
	}()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read preset %s: %w", ErrIO, name, err)
	}

	return decode(name, data)
}

func (r *S3Registry) Save(ctx context.Context, name string, files []string) error {
	name, err := normalizeSaveName(name)
	if err != nil {
		return err
	}

	data, err := encode(files)
	if err != nil {
		return err
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.key(name)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to put preset %s: %w", ErrIO, name, err)
	}

	log.Info().Str("preset", name).Str("bucket", r.bucket).Msg("saved preset")
	return nil
}

func (*S3Registry) Close() error {
	return nil
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
