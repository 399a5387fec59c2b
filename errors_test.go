package filestream_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/filestream"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		code filestream.ErrorCode
		want string
	}{
		{filestream.CodeNotFound, "file not found"},
		{filestream.CodeAlreadyExists, "file already exists"},
		{filestream.CodePermissionDenied, "permission denied"},
		{filestream.CodeIsDirectory, "path is a directory"},
		{filestream.CodeFileBusy, "file busy"},
		{filestream.CodeNoSpace, "no space left on device"},
		{filestream.CodeTooManyOpenFiles, "too many open files"},
		{filestream.CodeReadOnlyFilesystem, "read-only filesystem"},
		{filestream.CodeEndOfStream, "end of stream"},
		{filestream.CodeUnsupported, "unsupported operation"},
		{filestream.CodeInvalidArgument, "invalid argument"},
		{filestream.CodeDecodeFailed, "bytes not valid under active encoding"},
		{filestream.CodeIO, "I/O error"},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := &filestream.Error{Code: tt.code, Op: "read", Path: "f.bin"}
			assert.Contains(t, filestream.Describe(err), tt.want)
		})
	}
}

func TestDescribe_TranslationErrorNamesEncodings(t *testing.T) {
	err := &filestream.Error{
		Code: filestream.CodeEncodeFailed,
		Op:   "writechars",
		Path: "f.txt",
		From: filestream.UTF8,
		To:   filestream.Latin1,
	}
	desc := filestream.Describe(err)
	assert.Contains(t, desc, "UTF-8")
	assert.Contains(t, desc, "Latin-1")
}

func TestDescribe_NonStreamError(t *testing.T) {
	assert.Equal(t, "ok", filestream.Describe(nil))
	assert.Equal(t, "boom", filestream.Describe(errors.New("boom")))
}

func TestErrorIs_MatchesByCode(t *testing.T) {
	s, err := filestream.Open(newFakeFS(""), "f.bin")
	require.NoError(t, err)

	_, err = s.ReadBytes(1)
	assert.ErrorIs(t, err, &filestream.Error{Code: filestream.CodeEndOfStream})
	assert.NotErrorIs(t, err, &filestream.Error{Code: filestream.CodeIO})
}

func TestCodeOf_NonStreamError(t *testing.T) {
	assert.Equal(t, filestream.CodeIO, filestream.CodeOf(errors.New("boom")))
}

func TestEncodingString(t *testing.T) {
	assert.Equal(t, "Latin-1", filestream.Latin1.String())
	assert.Equal(t, "UTF-16LE", filestream.UTF16LE.String())
	assert.Equal(t, "UTF-32BE", filestream.UTF32BE.String())
	assert.Equal(t, "unknown", filestream.Encoding(99).String())
}
