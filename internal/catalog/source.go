// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"compress/gzip"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/taibuivan/yomira-indexer/internal/platform/apperr"
)

// Source streams entries out of a catalog dump file one at a time. The full
// catalog is never materialized: memory stays bounded by one entry plus the
// decoder's internal buffer regardless of dump size.
type Source struct {
	path    string
	file    *os.File
	gz      *gzip.Reader
	decoder *xml.Decoder
}

// Open prepares a streaming reader over the dump at path. Files ending in
// ".gz" are decompressed transparently, matching how the dump is published.
//
// Fails with a SOURCE_NOT_FOUND [apperr.AppError] when the file is missing
// or unreadable.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperr.SourceNotFound(path, err)
	}

	source := &Source{path: path, file: file}

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, apperr.SourceMalformed(path, err)
		}
		source.gz = gz
		reader = gz
	}

	source.decoder = xml.NewDecoder(reader)

	return source, nil
}

// Next decodes and returns the next entry element. It returns [io.EOF] once
// the dump is exhausted and a SOURCE_NOT_FOUND error on structural damage.
func (s *Source) Next() (*Entry, error) {
	for {
		token, err := s.decoder.Token()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, apperr.SourceMalformed(s.path, err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "anime" {
			continue
		}

		entry := &Entry{}
		if err := s.decoder.DecodeElement(entry, &start); err != nil {
			return nil, apperr.SourceMalformed(s.path, err)
		}

		return entry, nil
	}
}

// Path returns the filesystem path this source reads from.
func (s *Source) Path() string { return s.path }

// Close releases the underlying file handle.
func (s *Source) Close() error {
	if s.gz != nil {
		_ = s.gz.Close()
	}
	return s.file.Close()
}
