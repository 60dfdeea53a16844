package minio

import (
	"errors"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"
)

func TestObjectName(t *testing.T) {
	if got := objectName("zimbabweTourismReviews"); got != "slots/zimbabweTourismReviews.json" {
		t.Fatalf("unexpected object name %q", got)
	}
}

func TestIsNoSuchKey(t *testing.T) {
	if !isNoSuchKey(minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}) {
		t.Fatal("expected NoSuchKey response to be treated as missing")
	}
	if isNoSuchKey(minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden}) {
		t.Fatal("expected AccessDenied to be a real error")
	}
	if isNoSuchKey(errors.New("dial tcp: connection refused")) {
		t.Fatal("expected network error to be a real error")
	}
}
